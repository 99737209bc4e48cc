package importer

import (
	"strings"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/ryanuber/go-glob"
)

// DefaultRules are used to classify expenses without a valid category when
// no rules are given.
var DefaultRules = []MatchRule{
	{"*grocer*", ledger.Food},
	{"*restaurant*", ledger.Food},
	{"*breakfast*", ledger.Food},
	{"*lunch*", ledger.Food},
	{"*dinner*", ledger.Food},
	{"*coffee*", ledger.Food},
	{"*pizza*", ledger.Food},
	{"*food*", ledger.Food},
	{"*uber*", ledger.Transport},
	{"*taxi*", ledger.Transport},
	{"*metro*", ledger.Transport},
	{"*train*", ledger.Transport},
	{"*fuel*", ledger.Transport},
	{"*petrol*", ledger.Transport},
	{"*parking*", ledger.Transport},
	{"*movie*", ledger.Entertainment},
	{"*cinema*", ledger.Entertainment},
	{"*netflix*", ledger.Entertainment},
	{"*spotify*", ledger.Entertainment},
	{"*concert*", ledger.Entertainment},
	{"*amazon*", ledger.Shopping},
	{"*clothes*", ledger.Shopping},
	{"*shoes*", ledger.Shopping},
	{"*rent*", ledger.Bills},
	{"*electric*", ledger.Bills},
	{"*internet*", ledger.Bills},
	{"*water bill*", ledger.Bills},
	{"*phone bill*", ledger.Bills},
	{"*doctor*", ledger.Healthcare},
	{"*pharmacy*", ledger.Healthcare},
	{"*medicine*", ledger.Healthcare},
	{"*hospital*", ledger.Healthcare},
	{"*tuition*", ledger.Education},
	{"*course*", ledger.Education},
	{"*book*", ledger.Education},
}

// Classify returns the category of the first rule matching the description,
// or ledger.Other if none matches. Rules with invalid categories are skipped.
func Classify(description string, rules []MatchRule) (ledger.Category, bool) {
	name := strings.ToLower(strings.TrimSpace(description))

	// Rules are ordered by priority, the first match wins
	for _, rule := range rules {
		if rule.Category.Valid() && glob.Glob(strings.ToLower(rule.Match), name) {
			return rule.Category, true
		}
	}
	return ledger.Other, false
}
