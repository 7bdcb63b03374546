package tools

import "github.com/golang/glog"

var isEnabled = true

func DisableLogger() {
	isEnabled = false
}

func LogOutput(val ...interface{}) {
	if isEnabled {
		glog.Infoln(val...)
	}
}
