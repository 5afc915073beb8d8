package main

const (
	exitCodeSuccess       = 0
	exitCodeUsage         = 1
	exitCodeChannelInit   = 2
	exitCodeWatchAdd      = 3
	exitCodeEmptyBaseName = 4
	exitCodeRead          = 5
	exitCodeNotifyInit    = 6
)
