package catalog

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"mockmate/interview/internal/models"
)

// embeds the question bank and role catalog into the binary at compile time
//
//go:embed bank/*.yaml
var bankFS embed.FS

const rolesFile = "roles.yaml"

// Catalog is the static question bank keyed by (role, mode). Loaded once;
// lookups return copies so callers can never mutate the bank.
type Catalog struct {
	questions map[string][]models.Question
	roles     []models.RoleInfo
}

// on-disk shape of one role's bank file
type roleBank struct {
	Role      string                       `yaml:"role"`
	Questions map[string][]models.Question `yaml:"questions"`
}

type roleCatalog struct {
	Roles []models.RoleInfo `yaml:"roles"`
}

// New loads the embedded bank files.
func New() (*Catalog, error) {
	c := &Catalog{
		questions: make(map[string][]models.Question),
	}

	entries, err := bankFS.ReadDir("bank")
	if err != nil {
		return nil, fmt.Errorf("failed to read bank directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := bankFS.ReadFile("bank/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read bank file %s: %w", entry.Name(), err)
		}

		if entry.Name() == rolesFile {
			var rc roleCatalog
			if err := yaml.Unmarshal(data, &rc); err != nil {
				return nil, fmt.Errorf("failed to parse role catalog: %w", err)
			}
			c.roles = rc.Roles
			continue
		}

		var bank roleBank
		if err := yaml.Unmarshal(data, &bank); err != nil {
			return nil, fmt.Errorf("failed to parse bank file %s: %w", entry.Name(), err)
		}
		if err := c.addBank(bank); err != nil {
			return nil, fmt.Errorf("invalid bank file %s: %w", entry.Name(), err)
		}
	}

	if len(c.roles) == 0 {
		return nil, fmt.Errorf("role catalog %s is missing or empty", rolesFile)
	}

	return c, nil
}

func (c *Catalog) addBank(bank roleBank) error {
	if bank.Role == "" {
		return fmt.Errorf("bank has no role")
	}

	for mode, questions := range bank.Questions {
		m := models.Mode(mode)
		if m != models.ModeTechnical && m != models.ModeBehavioral {
			return fmt.Errorf("unknown mode %q", mode)
		}
		for i := range questions {
			if questions[i].ID == "" {
				return fmt.Errorf("question %d in mode %q has no id", i, mode)
			}
			// the question type is implied by its mode section
			questions[i].Type = m
		}
		c.questions[key(bank.Role, m)] = questions
	}

	return nil
}

// GetQuestions returns the bank entries for (role, mode) in definition
// order, truncated to count. Unknown (role, mode) pairs yield an empty
// slice, not an error.
func (c *Catalog) GetQuestions(role string, mode models.Mode, count int) []models.Question {
	available := c.questions[key(role, mode)]
	if count <= 0 || count > len(available) {
		count = len(available)
	}

	questions := make([]models.Question, count)
	copy(questions, available[:count])
	return questions
}

// Roles returns the role/domain catalog in definition order.
func (c *Catalog) Roles() []models.RoleInfo {
	roles := make([]models.RoleInfo, len(c.roles))
	copy(roles, c.roles)
	return roles
}

// QuestionCount returns how many questions the bank holds for (role, mode).
func (c *Catalog) QuestionCount(role string, mode models.Mode) int {
	return len(c.questions[key(role, mode)])
}

func key(role string, mode models.Mode) string {
	return role + "-" + string(mode)
}
