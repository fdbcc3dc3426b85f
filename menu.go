package openbankctl

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Action is one entry of the main menu. Its numeric value is the key the
// operator types.
type Action int

const (
	ActionEditBalance Action = iota + 1
	ActionChangeLanguage
	ActionToggleCard
	ActionViewProducts
	ActionExit
)

const (
	menuTitle     = "--- OpenBank Data Control Panel ---"
	menuPrompt    = "Select an option: "
	msgBadOption  = "Invalid option, please try again."
	msgExiting    = "Exiting..."
	msgMissingDir = "Please create it and add your JSON configuration files."
)

// MenuActions is the display order of the main menu.
var MenuActions = []Action{
	ActionEditBalance,
	ActionChangeLanguage,
	ActionToggleCard,
	ActionViewProducts,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionEditBalance:
		return "Edit Account Balance"
	case ActionChangeLanguage:
		return "Change User Language"
	case ActionToggleCard:
		return "Toggle Card Status"
	case ActionViewProducts:
		return "View Products"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

func (a Action) Key() string {
	return strconv.Itoa(int(a))
}

// ParseAction maps menu input to an Action. Only the listed keys match,
// exactly as typed.
func ParseAction(input string) (Action, bool) {
	for _, a := range MenuActions {
		if a.Key() == input {
			return a, true
		}
	}
	return 0, false
}

type Menu struct {
	svc    Service
	prompt *Prompter
	log    *zerolog.Logger
}

func NewMenu(svc Service, prompt *Prompter, log *zerolog.Logger) *Menu {
	return &Menu{
		svc:    svc,
		prompt: prompt,
		log:    log,
	}
}

// Run shows the menu and dispatches the chosen actions until the operator
// picks Exit, in which case it returns nil. It returns ErrInputClosed when
// input runs out first. Action failures are printed and never end the loop.
func (m *Menu) Run() error {
	for {
		m.prompt.Header(menuTitle)
		for _, a := range MenuActions {
			m.prompt.Printf("  %s. %s\n", a.Key(), a)
		}

		line, err := m.prompt.ReadLine(menuPrompt)
		if err != nil {
			return err
		}
		action, ok := ParseAction(line)
		if !ok {
			m.prompt.Println(msgBadOption)
			continue
		}
		if action == ActionExit {
			m.prompt.Println(msgExiting)
			return nil
		}

		if err = m.dispatch(action); err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			m.prompt.Failure(fmt.Sprintf("Error: %s", err.Error()))
		}
	}
}

func (m *Menu) dispatch(action Action) error {
	m.log.Debug().Stringer("action", action).Msg("dispatching")
	switch action {
	case ActionEditBalance:
		return m.svc.EditBalance()
	case ActionChangeLanguage:
		return m.svc.ChangeLanguage()
	case ActionToggleCard:
		return m.svc.ToggleCardStatus()
	case ActionViewProducts:
		return m.svc.ViewProducts()
	default:
		return fmt.Errorf("unhandled action %d", action)
	}
}

// CheckDataDir fails with ErrMissingConfigDir unless the data directory
// exists. It only stats the directory.
func CheckDataDir(cfg *Config) error {
	info, err := os.Stat(cfg.Data.Dir)
	if err != nil || !info.IsDir() {
		return ErrMissingConfigDir{Dir: cfg.Data.Dir}
	}
	return nil
}

// MissingDirMessage is the two-line notice shown when the data directory is absent.
func MissingDirMessage(dir string) string {
	return fmt.Sprintf("Error: The '%s' directory was not found.\n%s\n", dir, msgMissingDir)
}
