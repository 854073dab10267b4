package repository

import (
	"context"

	"github.com/diillson/mawsh-go/internal/domain/entity"
)

// ProfileRepository downloads the raw profile mapping from its remote source.
// A non-nil error means no response was obtained at all; an unsuccessful
// response is returned as a FetchResult.
type ProfileRepository interface {
	FetchProfiles(ctx context.Context) (*entity.FetchResult, error)
}
