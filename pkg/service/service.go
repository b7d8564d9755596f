// Package service holds what the aggregate services share. The services
// themselves live in sub-packages:
//
//	import "github.com/amirasaad/tripool/pkg/service/pot"
//	import "github.com/amirasaad/tripool/pkg/service/trip"
//	import "github.com/amirasaad/tripool/pkg/service/friendship"
//	import "github.com/amirasaad/tripool/pkg/service/user"
//	import "github.com/amirasaad/tripool/pkg/service/auth"
package service

import (
	"context"

	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
)

// Transact runs fn in one unit of work. A panic raised while fn runs rolls
// the transaction back and is returned as a failure carrying the panic text.
func Transact(
	ctx context.Context,
	uow repository.UnitOfWork,
	fn func(uow repository.UnitOfWork) error,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failure.Recovered(r)
		}
	}()
	return uow.Do(ctx, fn)
}
