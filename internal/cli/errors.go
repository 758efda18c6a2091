package cli

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrRemoteBehind  = errors.New("remote instance runs an older version")
)
