package service

import "errors"

var (
	ErrNoBuildMetadata = errors.New("no build metadata provided")

	ErrDuplicateUpgradeAction = errors.New("upgrade action registered twice")
	ErrUnnamedUpgradeAction   = errors.New("upgrade action has no name")
	ErrUpgradeActionFailed    = errors.New("upgrade action failed")
)
