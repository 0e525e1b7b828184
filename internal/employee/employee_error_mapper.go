package employee

import (
	"errors"

	employeeerrors "github.com/naveen224793-boop/assignment3/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// invalid_text_representation, raised by PostgreSQL for a malformed uuid.
const pgInvalidTextRepresentation = "22P02"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, errMalformedID) ||
		errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, mongo.ErrNoDocuments) {
		return employeeerrors.ErrEmployeeNotFound.WithErr(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return employeeerrors.ErrEmployeeNotFound.WithErr(err)
	}

	return err
}
