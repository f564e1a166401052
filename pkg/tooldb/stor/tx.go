package stor

import (
	"github.com/apex/log"
	"github.com/neurmill/toolrec/pkg/config"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const minTxAttempts = 3

// txAttempts is TOOLREC_TX_RETRY from the current config, never less than minTxAttempts.
// It is read on each call so a config loaded from --config or --env-file applies.
func txAttempts() int {
	return max(config.GetIntKeyWithDefault("TOOLREC_TX_RETRY", minTxAttempts), minTxAttempts)
}

// WithTxRetry runs fn in a transaction, retrying up to txAttempts() times. A missing
// record will not appear on a retry, so those errors are returned at once.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	attempts := txAttempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.Transaction(fn); err == nil {
			return nil
		}

		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound) {
			return err
		}

		log.Debugf("Transaction attempt %d of %d failed: %s", attempt, attempts, err)
	}

	return err
}
