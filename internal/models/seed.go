package models

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultFrequencies is the frequency catalog, in display order.
var DefaultFrequencies = []Frequency{
	{Title: "Daily", IntervalValue: 1, IntervalUnit: "day"},
	{Title: "Weekly", IntervalValue: 1, IntervalUnit: "week"},
	{Title: "Biweekly", IntervalValue: 2, IntervalUnit: "week"},
	{Title: "Monthly", IntervalValue: 1, IntervalUnit: "month"},
	{Title: "Bimonthly", IntervalValue: 2, IntervalUnit: "month"},
	{Title: "Quarterly", IntervalValue: 3, IntervalUnit: "month"},
	{Title: "Semiannual", IntervalValue: 6, IntervalUnit: "month"},
	{Title: "Yearly", IntervalValue: 1, IntervalUnit: "year"},
}

var DefaultCategories = []Category{
	{Name: "Alimentação", WebDeviceIcon: "Utensils"},
	{Name: "Transporte", WebDeviceIcon: "Car"},
	{Name: "Moradia", WebDeviceIcon: "Home"},
	{Name: "Saúde", WebDeviceIcon: "Heart"},
	{Name: "Educação", WebDeviceIcon: "GraduationCap"},
	{Name: "Lazer", WebDeviceIcon: "Gamepad2"},
	{Name: "Compras", WebDeviceIcon: "ShoppingCart"},
	{Name: "Vestuário", WebDeviceIcon: "Shirt"},
	{Name: "Beleza", WebDeviceIcon: "Sparkles"},
	{Name: "Contas", WebDeviceIcon: "FileText"},
	{Name: "Salário", WebDeviceIcon: "DollarSign"},
	{Name: "Investimentos", WebDeviceIcon: "TrendingUp"},
	{Name: "Assinaturas", WebDeviceIcon: "CreditCard"},
	{Name: "Viagens", WebDeviceIcon: "Plane"},
	{Name: "Outros", WebDeviceIcon: "MoreHorizontal"},
}

// Seed creates the frequency catalog and the default categories if they do not exist.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, f := range DefaultFrequencies {
			f.Position = i
			err := tx.Where(Frequency{Title: f.Title}).Attrs(f).FirstOrCreate(&Frequency{}).Error
			if err != nil {
				return fmt.Errorf("seeding frequency %s: %w", f.Title, err)
			}
		}

		for _, c := range DefaultCategories {
			err := tx.Where(Category{Name: c.Name}).Attrs(c).FirstOrCreate(&Category{}).Error
			if err != nil {
				return fmt.Errorf("seeding category %s: %w", c.Name, err)
			}
		}

		return nil
	})
}
