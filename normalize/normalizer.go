package normalize

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/riyaa1611/SmartCode-Demo/finding"))

// Normalizer converts raw result bundles into canonical findings. It holds
// no state and is safe for concurrent use.
type Normalizer struct{}

// New returns a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Stats counts what happened to the raw entries of one bundle.
type Stats struct {
	Decoded    int `json:"decoded"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

// Normalize converts every recognized bucket of bundle into findings.
// Buckets are read in a fixed order and duplicate findings are collapsed,
// so the same bundle always yields the same list.
func (n *Normalizer) Normalize(bundle schema.Result) []schema.Finding {
	findings, _ := n.NormalizeWithStats(bundle)
	return findings
}

// NormalizeWithStats is Normalize, also reporting how many raw entries were
// decoded, skipped or collapsed as duplicates.
func (n *Normalizer) NormalizeWithStats(bundle schema.Result) ([]schema.Finding, Stats) {
	var (
		stats    Stats
		findings []schema.Finding
		seen     = map[string]bool{}
	)

	for _, bucket := range Buckets {
		for _, item := range bundle.List(bucket) {
			raw, ok := schema.AsRecord(item)
			if !ok {
				stats.Skipped++
				continue
			}

			e, ok, err := decodeEntry(bucket, raw)
			if err != nil || !ok {
				stats.Skipped++
				continue
			}
			stats.Decoded++

			f := e.finding()
			f.Fingerprint = Fingerprint(f)
			if seen[f.Fingerprint] {
				stats.Duplicates++
				continue
			}
			seen[f.Fingerprint] = true

			findings = append(findings, f)
		}
	}

	return findings, stats
}

// Fingerprint derives a stable identifier from the identifying content of a
// finding. Confidence and auxiliary fields do not contribute.
func Fingerprint(f schema.Finding) string {
	key := strings.Join([]string{
		string(f.Category),
		string(f.Severity),
		f.Title,
		f.Description,
		f.Location.FilePath,
		strconv.Itoa(f.Location.Line),
	}, "\x00")
	return uuid.NewSHA1(fingerprintNamespace, []byte(key)).String()
}

// Merge concatenates the bucket lists of several result records into one
// bundle. Records are read in argument order; nil records are ignored.
func Merge(results ...schema.Result) schema.Result {
	merged := schema.Result{}
	for _, bucket := range Buckets {
		var all []any
		for _, r := range results {
			all = append(all, r.List(bucket)...)
		}
		if all != nil {
			merged[bucket] = all
		}
	}
	return merged
}
