package openbankctl

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	accountsKey = "accounts"
)

func accountLabel(acct gjson.Result) string {
	return fmt.Sprintf("%s (%s)", textOr(acct.Get("name"), "N/A"), textOr(acct.Get("accountNumber"), "N/A"))
}

func (s *serviceImpl) EditBalance() error {
	doc, err := s.store.Load(AccountsDoc)
	if err != nil {
		return err
	}
	accts := doc.Get(accountsKey)
	if !accts.IsArray() {
		return nil
	}
	records := accts.Array()
	if len(records) == 0 {
		s.prompt.Println("No accounts found.")
		return nil
	}

	s.prompt.Header("--- Select Account to Edit ---")
	labels := make([]string, len(records))
	for i, acct := range records {
		labels[i] = accountLabel(acct)
	}
	idx, err := s.prompt.ReadChoice(labels)
	if err != nil {
		return err
	}

	acct := records[idx]
	s.prompt.Printf("\nCurrent balance for %s: %s\n",
		textOr(acct.Get("name"), "N/A"), textOr(acct.Get("balance"), "N/A"))
	bal, err := s.prompt.ReadNumber("Enter new balance: ")
	if err != nil {
		return err
	}

	if err = SetBalance(doc, idx, bal); err != nil {
		return err
	}
	s.log.Debug().Int("account", idx).Str("balance", bal.String()).Msg("balance updated")
	return s.save(doc)
}

// SetBalance writes bal to the balance of the idx-th account. When the record
// carries availableBalance it is set to the same amount.
func SetBalance(doc *Document, idx int, bal decimal.Decimal) error {
	path := fmt.Sprintf("%s.%d", accountsKey, idx)
	if err := doc.SetRaw(path+".balance", bal.String()); err != nil {
		return err
	}
	if doc.Get(path + ".availableBalance").Exists() {
		return doc.SetRaw(path+".availableBalance", bal.String())
	}
	return nil
}
