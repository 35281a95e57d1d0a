package repository

import "errors"

var ErrDictatorExists = errors.New("dictator already exists")
var ErrNotFound = errors.New("not found")
