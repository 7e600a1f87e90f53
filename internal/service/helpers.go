package service

import (
	"errors"

	"github.com/alexanderramin/partes/internal/repository"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
