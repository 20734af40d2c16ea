package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		createContactsTable(),
		createContentTables(),
		createBannerInquiriesTable(),
		createFaqsTable(),
		createAdminsTable(),
		seedFaqs(),
	})

	return m.Migrate()
}

func createContactsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000001_create_contacts",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.ContactModel{}); err != nil {
				return err
			}
			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_contacts_status_created ON contacts (status, created_at)`,
				`CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts (email)`,
			}
			for _, sql := range indexes {
				if err := tx.Exec(sql).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.ContactModel{})
		},
	}
}

func createContentTables() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000002_create_guides_and_qnas",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.GuideModel{}); err != nil {
				return err
			}
			if err := tx.AutoMigrate(&repository.QnaModel{}); err != nil {
				return err
			}
			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_guides_published_created ON guides (published, created_at)`,
				`CREATE INDEX IF NOT EXISTS idx_guides_category ON guides (category)`,
				`CREATE INDEX IF NOT EXISTS idx_qnas_category ON qnas (category)`,
			}
			for _, sql := range indexes {
				if err := tx.Exec(sql).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&repository.QnaModel{}); err != nil {
				return err
			}
			return tx.Migrator().DropTable(&repository.GuideModel{})
		},
	}
}

func createBannerInquiriesTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000003_create_banner_inquiries",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.BannerInquiryModel{}); err != nil {
				return err
			}
			return tx.Exec(
				`CREATE INDEX IF NOT EXISTS idx_banner_inquiries_status ON banner_inquiries (status, created_at)`,
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.BannerInquiryModel{})
		},
	}
}

func createFaqsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000004_create_faqs",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&repository.FaqModel{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.FaqModel{})
		},
	}
}

// seedFaqs loads the baseline corpus the chat assistant answers from.
// Rows are only inserted into an empty table so operator edits survive
// redeploys.
func seedFaqs() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000006_seed_faqs",
		Migrate: func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&repository.FaqModel{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}

			seed := []repository.FaqModel{
				{Question: "What is the beach cleanup program?", Answer: "A volunteer program where organizations adopt a stretch of coastline and run regular cleanups with program staff.", SortOrder: 1},
				{Question: "How do we apply?", Answer: "Submit a contact request on the site with your preferred date and time. Program staff will reach out to confirm the details.", SortOrder: 2},
				{Question: "Is there a participation fee?", Answer: "No. Participation is free and cleanup supplies are provided on site.", SortOrder: 3},
				{Question: "When does the program run?", Answer: "Cleanups run from March through November, weather permitting.", SortOrder: 4},
				{Question: "Can we reschedule a confirmed visit?", Answer: "Yes. Contact the staff member assigned to your request and they will propose a new date.", SortOrder: 5},
			}
			return tx.Create(&seed).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec(`DELETE FROM faqs`).Error
		},
	}
}

func createAdminsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000005_create_admins",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&repository.AdminModel{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.AdminModel{})
		},
	}
}
