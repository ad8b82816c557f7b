package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/gedcheck/internal/rules"
)

// DomainFinding is the fingerprint domain prefix.
// Version suffix enables future algorithm migration.
const DomainFinding = "gedcheck/finding/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data) as hex.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes the stable identity of a finding.
func Fingerprint(f rules.Finding) (string, error) {
	canonical, err := marshalCanonical(findingObject(f))
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return hashWithDomain(DomainFinding, canonical), nil
}

// findingObject is the canonical form of a finding.
func findingObject(f rules.Finding) object {
	subjects := make([]any, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		o := object{"id": s.ID}
		if s.Name != "" {
			o["name"] = s.Name
		}
		subjects = append(subjects, o)
	}

	dates := make([]any, 0, len(f.Dates))
	for _, d := range f.Dates {
		dates = append(dates, object{"label": d.Label, "date": d.Date.String()})
	}

	obj := object{
		"rule":     string(f.Rule),
		"message":  f.Message,
		"subjects": subjects,
		"dates":    dates,
	}
	if f.FamilyID != "" {
		obj["family_id"] = f.FamilyID
	}
	if f.Magnitude != nil {
		obj["magnitude"] = object{"value": f.Magnitude.Value, "unit": f.Magnitude.Unit}
	}
	return obj
}
