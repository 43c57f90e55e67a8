package notifier

import (
	"context"
	"errors"

	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
)

// Multi sends to every notifier and joins their errors.
type Multi []contract.Notifier

func (m Multi) Notify(ctx context.Context, text string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
