package imaging

import "errors"

// ErrUnreadableImage is returned when a file cannot be decoded as an image.
var ErrUnreadableImage = errors.New("image could not be read")
