package model

// ContentModel is the GORM-specific struct for the 'content' table. One row
// per file ever observed in the catalog listing; rows are never updated or
// deleted during normal operation.
type ContentModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Subject      string `gorm:"column:subject;type:text"`
	LinkDownload string `gorm:"column:linkDownload;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "content"
}
