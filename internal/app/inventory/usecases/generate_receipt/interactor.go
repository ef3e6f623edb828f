package generate_receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/pkg/clock"
)

// archiveTimeLayout goes into receipt file names.
const archiveTimeLayout = "20060102150405"

// Interactor handles the generate receipt use case.
type Interactor struct {
	clock      clock.Clock
	archiveDir string
	logger     *zap.Logger
}

// NewInteractor creates a new generate receipt interactor. When archiveDir is
// not empty every rendered receipt is also written there.
func NewInteractor(clk clock.Clock, archiveDir string, logger *zap.Logger) *Interactor {
	return &Interactor{
		clock:      clk,
		archiveDir: archiveDir,
		logger:     logger.Named("generate_receipt"),
	}
}

// Execute renders the order at the current time. An empty order is refused
// with domain.ErrEmptyOrder.
func (i *Interactor) Execute(_ context.Context, order *domain.Order) (string, error) {
	if order.IsEmpty() {
		return "", domain.ErrEmptyOrder
	}

	now := i.clock.Now()
	receipt := order.RenderReceipt(now)

	if i.archiveDir != "" {
		path, err := i.archive(order.ID(), now.Format(archiveTimeLayout), receipt)
		if err != nil {
			return "", err
		}
		i.logger.Info("receipt archived", zap.String("order_id", order.ID()), zap.String("path", path))
	}

	i.logger.Info("receipt generated",
		zap.String("order_id", order.ID()),
		zap.Int("lines", len(order.Lines())),
		zap.Stringer("total", order.Total()),
	)
	return receipt, nil
}

func (i *Interactor) archive(orderID, stamp, receipt string) (string, error) {
	if err := os.MkdirAll(i.archiveDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt dir: %w", err)
	}

	path := filepath.Join(i.archiveDir, fmt.Sprintf("receipt-%s-%s.txt", orderID, stamp))
	if err := os.WriteFile(path, []byte(receipt+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return path, nil
}
