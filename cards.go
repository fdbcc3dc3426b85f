package openbankctl

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	cardsKey = "userCards"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// ToggleStatus flips a card status. Anything other than active becomes active.
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusBlocked
	}
	return StatusActive
}

// cardLabel renders e.g. "Debit Card (999)" from cardTypeId "debit_card".
func cardLabel(card gjson.Result) string {
	typeID := strings.ReplaceAll(textOr(card.Get("cardTypeId"), "Card"), "_", " ")
	return fmt.Sprintf("%s (%s)", cases.Title(language.Und).String(typeID), textOr(card.Get("cardNumber"), "N/A"))
}

func (s *serviceImpl) ToggleCardStatus() error {
	doc, err := s.store.Load(CardsDoc)
	if err != nil {
		return err
	}
	cards := doc.Get(cardsKey)
	if !cards.IsArray() {
		return nil
	}
	records := cards.Array()
	if len(records) == 0 {
		s.prompt.Println("No cards found.")
		return nil
	}

	s.prompt.Header("--- Select Card to Toggle Status ---")
	labels := make([]string, len(records))
	for i, card := range records {
		labels[i] = cardLabel(card)
	}
	idx, err := s.prompt.ReadChoice(labels)
	if err != nil {
		return err
	}

	current := records[idx].Get("status").String()
	next := ToggleStatus(current)
	s.prompt.Printf("Changing status of %s from '%s' to '%s'.\n", labels[idx], current, next)
	if err = doc.Set(fmt.Sprintf("%s.%d.status", cardsKey, idx), next); err != nil {
		return err
	}
	return s.save(doc)
}
