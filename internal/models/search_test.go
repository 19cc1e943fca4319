package models_test

import (
	"testing"

	"github.com/moneyflow-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestContains() {
	for _, name := range []string{"Desconto 100%", "conta_corrente", `C:\Backup`} {
		suite.Require().Nil(suite.db.Create(&models.Category{Name: name}).Error)
	}

	tests := []struct {
		search   string
		expected []string
	}{
		{"saúde", []string{"Saúde"}},
		{"SAÚDE", []string{"Saúde"}},
		{"ÇÃO", []string{"Alimentação", "Educação"}},
		{"%", []string{"Desconto 100%"}},
		{"_", []string{"conta_corrente"}},
		{`\`, []string{`C:\Backup`}},
		{"a_c", []string{}},
		{"", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.search, func(t *testing.T) {
			var names []string
			err := suite.db.Model(&models.Category{}).Scopes(models.Contains("name", tt.search)).Order("name ASC").Pluck("name", &names).Error
			assert.Nil(t, err)

			// The empty string matches everything
			if tt.expected == nil {
				assert.Len(t, names, len(models.DefaultCategories)+3)
				return
			}

			assert.ElementsMatch(t, tt.expected, names)
		})
	}
}
