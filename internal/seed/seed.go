package seed

import (
	"embed"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

//go:embed data/*.yaml
var dataFS embed.FS

type supplierSeed struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category"`
	LeadTimeDays int     `yaml:"lead_time_days"`
	Rating       float64 `yaml:"rating"`
	Country      string  `yaml:"country"`
}

type componentSeed struct {
	MPN          string  `yaml:"mpn"`
	Description  string  `yaml:"description"`
	Supplier     string  `yaml:"supplier"`
	Commodity    string  `yaml:"commodity"`
	UnitCost     float64 `yaml:"unit_cost"`
	MOQ          int     `yaml:"moq"`
	LeadTimeDays int     `yaml:"lead_time_days"`
	StockQty     int     `yaml:"stock_qty"`
}

type bomItemSeed struct {
	MPN          string  `yaml:"mpn"`
	Description  string  `yaml:"description"`
	Qty          int     `yaml:"qty"`
	UnitCost     float64 `yaml:"unit_cost"`
	Supplier     string  `yaml:"supplier"`
	LeadTimeDays int     `yaml:"lead_time_days"`
}

type customerSeed struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Region  string  `yaml:"region"`
	Revenue float64 `yaml:"revenue"`
	Orders  int     `yaml:"orders"`
}

type projectSeed struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Customer  string  `yaml:"customer"`
	Status    string  `yaml:"status"`
	Value     float64 `yaml:"value"`
	StartDate string  `yaml:"start_date"`
}

type sapTableSeed struct {
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	RecordCount  int64     `yaml:"record_count"`
	LastSyncAt   time.Time `yaml:"last_sync_at"`
	Status       string    `yaml:"status"`
	Category     string    `yaml:"category"`
	ColumnsCount int       `yaml:"columns_count"`
	KeyFields    string    `yaml:"key_fields"`
	SyncMode     string    `yaml:"sync_mode"`
}

type catalogFile struct {
	Suppliers  []supplierSeed  `yaml:"suppliers"`
	Components []componentSeed `yaml:"components"`
	BOMItems   []bomItemSeed   `yaml:"bom_items"`
	Customers  []customerSeed  `yaml:"customers"`
	Projects   []projectSeed   `yaml:"projects"`
	SapTables  []sapTableSeed  `yaml:"sap_tables"`
}

// Apply 把内置样例数据写入数据库,返回各表写入行数
// 主键冲突时更新已有行,重复执行是幂等的
func Apply(db *gorm.DB) (map[string]int, error) {
	data, err := load()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, s := range data.Suppliers {
			m := model.SupplierModel{
				ID:           s.ID,
				Name:         s.Name,
				Category:     s.Category,
				LeadTimeDays: s.LeadTimeDays,
				Rating:       s.Rating,
				Country:      s.Country,
			}
			if err := m.Validate(); err != nil {
				return fmt.Errorf("seed supplier %s: %w", s.ID, err)
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			counts["suppliers"]++
		}

		for _, c := range data.Components {
			m := model.ComponentModel{
				MPN:          c.MPN,
				Description:  c.Description,
				SupplierName: c.Supplier,
				Commodity:    c.Commodity,
				UnitCost:     c.UnitCost,
				MOQ:          c.MOQ,
				LeadTimeDays: c.LeadTimeDays,
				StockQty:     c.StockQty,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			counts["components"]++
		}

		// BOM 行没有业务主键,重建前清空旧行
		if err := tx.Where("1 = 1").Delete(&model.BOMItemModel{}).Error; err != nil {
			return err
		}
		for _, b := range data.BOMItems {
			m := model.BOMItemModel{
				MPN:          b.MPN,
				Description:  b.Description,
				Qty:          b.Qty,
				UnitCost:     b.UnitCost,
				SupplierName: b.Supplier,
				LeadTimeDays: b.LeadTimeDays,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			counts["bom_items"]++
		}

		for _, c := range data.Customers {
			m := model.CustomerModel{
				ID:      c.ID,
				Name:    c.Name,
				Region:  c.Region,
				Revenue: c.Revenue,
				Orders:  c.Orders,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			counts["customers"]++
		}

		for _, p := range data.Projects {
			m := model.ProjectModel{
				ID:           p.ID,
				Name:         p.Name,
				CustomerName: p.Customer,
				Status:       p.Status,
				Value:        p.Value,
				StartDate:    p.StartDate,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			counts["projects"]++
		}

		for _, t := range data.SapTables {
			m := model.SapTableModel{
				Name:         t.Name,
				Description:  t.Description,
				RecordCount:  t.RecordCount,
				LastSyncAt:   t.LastSyncAt,
				Status:       t.Status,
				Category:     t.Category,
				ColumnsCount: t.ColumnsCount,
				KeyFields:    t.KeyFields,
				SyncMode:     t.SyncMode,
			}
			if err := m.Validate(); err != nil {
				return fmt.Errorf("seed sap table %s: %w", t.Name, err)
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			counts["sap_tables"]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("counts", counts).Info("seed data applied")
	return counts, nil
}

func load() (*catalogFile, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, err
	}

	var merged catalogFile
	for _, entry := range entries {
		raw, err := dataFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, err
		}
		var part catalogFile
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("parse seed file %s: %w", entry.Name(), err)
		}
		merged.Suppliers = append(merged.Suppliers, part.Suppliers...)
		merged.Components = append(merged.Components, part.Components...)
		merged.BOMItems = append(merged.BOMItems, part.BOMItems...)
		merged.Customers = append(merged.Customers, part.Customers...)
		merged.Projects = append(merged.Projects, part.Projects...)
		merged.SapTables = append(merged.SapTables, part.SapTables...)
	}
	return &merged, nil
}
