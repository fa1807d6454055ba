package models

import "fmt"

// CardIdentifier correlates transactions for velocity scoring: the card
// fingerprint when the platform reported one, else brand+last4.
type CardIdentifier struct {
	Fingerprint string
	Brand       string
	Last4       string
}

func (id CardIdentifier) ByFingerprint() bool {
	return id.Fingerprint != ""
}

// Label is the redacted form used in reason details and logs.
func (id CardIdentifier) Label() string {
	if id.ByFingerprint() {
		fp := id.Fingerprint
		if len(fp) > 6 {
			fp = fp[:6] + "…"
		}
		return fmt.Sprintf("fingerprint %s", fp)
	}
	return fmt.Sprintf("%s last4 %s", id.Brand, id.Last4)
}

// ResolveIdentifier picks the best available card identifier for a
// transaction. ok is false when the transaction carries no usable card
// descriptor, in which case velocity rules do not apply.
func ResolveIdentifier(tx *Transaction) (CardIdentifier, bool) {
	if tx.CardFingerprint != nil && *tx.CardFingerprint != "" {
		return CardIdentifier{Fingerprint: *tx.CardFingerprint}, true
	}
	if tx.CardBrand != nil && *tx.CardBrand != "" && tx.CardLast4 != nil && *tx.CardLast4 != "" {
		return CardIdentifier{Brand: *tx.CardBrand, Last4: *tx.CardLast4}, true
	}
	return CardIdentifier{}, false
}
