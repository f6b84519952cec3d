package handler

import "errors"

var ErrItemNotInstalled = errors.New("item is not installed")
