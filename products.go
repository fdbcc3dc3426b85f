package openbankctl

import (
	"fmt"

	"github.com/tidwall/gjson"
)

type productSection struct {
	key    string
	title  string
	attr   string
	format string
}

var productSections = []productSection{
	{key: "deposits", title: "[ Deposits ]", attr: "interestRate", format: "Rate: %s%%"},
	{key: "loans", title: "[ Loans ]", attr: "interestRateFrom", format: "Rates from: %s%%"},
	{key: "investments", title: "[ Investments ]", attr: "riskLevel", format: "Risk Level: %s"},
}

// ViewProducts lists every product section present in the document. It never
// writes the document back.
func (s *serviceImpl) ViewProducts() error {
	doc, err := s.store.Load(ProductsDoc)
	if err != nil {
		return err
	}
	root := doc.Root()
	if !root.IsObject() || len(root.Map()) == 0 {
		return nil
	}

	s.prompt.Header("--- Available Products ---")
	for _, sec := range productSections {
		list := root.Get(sec.key)
		if !list.IsArray() {
			continue
		}
		s.prompt.Printf("\n%s\n", sec.title)
		for _, item := range list.Array() {
			s.prompt.Printf("  - %s (%s)\n", textOr(item.Get("name"), "N/A"), productDetail(item, sec))
		}
	}
	return s.prompt.Pause("\nPress Enter to return to menu...")
}

func productDetail(item gjson.Result, sec productSection) string {
	return fmt.Sprintf(sec.format, textOr(item.Get(sec.attr), "N/A"))
}
