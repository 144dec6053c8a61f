package errmsg

import "errors"

var (
	NotQueued          = errors.New("request not queued")
	ReadFailed         = errors.New("read failed")
	WriteFailed        = errors.New("write failed")
	NoSuchAttr         = errors.New("no such attribute")
	BadSyncRatio       = errors.New("bad sync ratio")
	InvalidRequest     = errors.New("invalid request")
	UnknownScheduler   = errors.New("unknown scheduler")
	DuplicateScheduler = errors.New("duplicate scheduler")
)
