package leader

import "errors"

var (
	ErrLeaderNotFound        = errors.New("team leader not found")
	ErrSerialNumberTaken     = errors.New("serial number already in use")
	ErrEnhancementInProgress = errors.New("portrait enhancement already in progress")
)
