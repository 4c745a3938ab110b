package service

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DigitalBullGO/indicatorems/internal/model"
)

// BackupService 主数据备份服务
// 将目录主数据与 SAP 表状态导出为 tar.gz 内的 YAML 快照
type BackupService struct {
	db        *gorm.DB
	backupDir string
}

// BackupInfo 备份信息
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// catalogSnapshot 单个备份文件的完整内容
type catalogSnapshot struct {
	CreatedAt  time.Time              `yaml:"created_at"`
	Suppliers  []model.SupplierModel  `yaml:"suppliers"`
	Components []model.ComponentModel `yaml:"components"`
	BOMItems   []model.BOMItemModel   `yaml:"bom_items"`
	Customers  []model.CustomerModel  `yaml:"customers"`
	Projects   []model.ProjectModel   `yaml:"projects"`
	SapTables  []model.SapTableModel  `yaml:"sap_tables"`
}

// NewBackupService 创建备份服务
func NewBackupService(db *gorm.DB, backupDir string) *BackupService {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		// 目录不可写时退回临时目录
		backupDir = os.TempDir()
	}

	return &BackupService{
		db:        db,
		backupDir: backupDir,
	}
}

// CreateBackup 创建备份,返回备份文件路径
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	snapshot := catalogSnapshot{CreatedAt: time.Now()}

	db := s.db.WithContext(ctx)
	if err := db.Order("id ASC").Find(&snapshot.Suppliers).Error; err != nil {
		return "", fmt.Errorf("failed to dump suppliers: %w", err)
	}
	if err := db.Order("mpn ASC").Find(&snapshot.Components).Error; err != nil {
		return "", fmt.Errorf("failed to dump components: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.BOMItems).Error; err != nil {
		return "", fmt.Errorf("failed to dump bom items: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.Customers).Error; err != nil {
		return "", fmt.Errorf("failed to dump customers: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.Projects).Error; err != nil {
		return "", fmt.Errorf("failed to dump projects: %w", err)
	}
	if err := db.Order("name ASC").Find(&snapshot.SapTables).Error; err != nil {
		return "", fmt.Errorf("failed to dump sap tables: %w", err)
	}

	payload, err := yaml.Marshal(&snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("backup_catalog_%s.tar.gz", timestamp)
	backupPath := filepath.Join(s.backupDir, filename)

	if err := writeSnapshotArchive(backupPath, payload); err != nil {
		return "", err
	}

	return backupPath, nil
}

// writeSnapshotArchive 将快照写入 tar.gz 文件
func writeSnapshotArchive(backupPath string, payload []byte) error {
	file, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	header := &tar.Header{
		Name:    "catalog.yaml",
		Mode:    0644,
		Size:    int64(len(payload)),
		ModTime: time.Now(),
	}
	if err := tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write tar header: %w", err)
	}
	if _, err := tarWriter.Write(payload); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// RestoreBackup 从备份文件恢复主数据
// 按主键/业务键覆盖写回,BOM 行整表重建
func (s *BackupService) RestoreBackup(ctx context.Context, backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	payload, err := readSnapshotArchive(backupPath)
	if err != nil {
		return err
	}

	var snapshot catalogSnapshot
	if err := yaml.Unmarshal(payload, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{UpdateAll: true}

		if len(snapshot.Suppliers) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Suppliers).Error; err != nil {
				return fmt.Errorf("failed to restore suppliers: %w", err)
			}
		}
		if len(snapshot.Components) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Components).Error; err != nil {
				return fmt.Errorf("failed to restore components: %w", err)
			}
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.BOMItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear bom items: %w", err)
		}
		if len(snapshot.BOMItems) > 0 {
			if err := tx.Create(&snapshot.BOMItems).Error; err != nil {
				return fmt.Errorf("failed to restore bom items: %w", err)
			}
		}
		if len(snapshot.Customers) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Customers).Error; err != nil {
				return fmt.Errorf("failed to restore customers: %w", err)
			}
		}
		if len(snapshot.Projects) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Projects).Error; err != nil {
				return fmt.Errorf("failed to restore projects: %w", err)
			}
		}
		if len(snapshot.SapTables) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.SapTables).Error; err != nil {
				return fmt.Errorf("failed to restore sap tables: %w", err)
			}
		}

		return nil
	})
}

// readSnapshotArchive 从 tar.gz 备份文件读出快照内容
func readSnapshotArchive(backupPath string) ([]byte, error) {
	file, err := os.Open(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar: %w", err)
		}

		if filepath.Ext(header.Name) == ".yaml" {
			return io.ReadAll(tarReader)
		}
	}

	return nil, fmt.Errorf("no snapshot found in backup: %s", backupPath)
}

// ListBackups 列出所有备份
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	var backups []BackupInfo

	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isBackupFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Filename:  entry.Name(),
			Path:      filepath.Join(s.backupDir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	return backups, nil
}

// BackupDir 获取备份目录
func (s *BackupService) BackupDir() string {
	return s.backupDir
}

// DeleteBackup 删除备份
func (s *BackupService) DeleteBackup(ctx context.Context, filename string) error {
	backupPath := filepath.Join(s.backupDir, filename)

	// 安全检查:确保文件在备份目录内
	absBackupDir, err := filepath.Abs(s.backupDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute backup directory: %w", err)
	}

	absBackupPath, err := filepath.Abs(backupPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute backup path: %w", err)
	}

	if !strings.HasPrefix(absBackupPath, absBackupDir+string(os.PathSeparator)) {
		return fmt.Errorf("invalid backup path: %s", filename)
	}

	if err := os.Remove(backupPath); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}

	return nil
}

// CleanupExpired 删除超过保留期的备份
func (s *BackupService) CleanupExpired(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	backups, err := s.ListBackups(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	removed := 0
	for _, backup := range backups {
		if backup.CreatedAt.After(cutoff) {
			continue
		}
		if err := os.Remove(backup.Path); err != nil {
			return removed, fmt.Errorf("failed to remove expired backup %s: %w", backup.Filename, err)
		}
		removed++
	}

	return removed, nil
}

// isBackupFile 检查是否是备份文件
func isBackupFile(filename string) bool {
	return strings.HasPrefix(filename, "backup_") && strings.HasSuffix(filename, ".tar.gz")
}
