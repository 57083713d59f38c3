package payments

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const receiptAttempts = 5

// newReceiptNumber builds a candidate receipt token: the payment date plus a
// random fragment, e.g. RCP-20240115-9F2C41B3. A timestamp alone is not
// collision-safe under rapid repeated submissions.
func newReceiptNumber(now time.Time) string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RCP-%s-%s", now.Format("20060102"), fragment)
}

func (r *Recorder) uniqueReceiptNumber() (string, error) {
	for i := 0; i < receiptAttempts; i++ {
		candidate := newReceiptNumber(nowFunc())
		exists, err := r.ledger.ReceiptExists(candidate)
		if err != nil {
			return "", &PersistenceError{Op: "check receipt number", Err: err}
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", &PersistenceError{Op: "generate receipt number", Err: fmt.Errorf("no unique token after %d attempts", receiptAttempts)}
}
