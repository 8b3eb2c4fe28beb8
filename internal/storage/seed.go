package storage

import (
	"golang.org/x/crypto/bcrypt"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	sysconfigmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/sysconfig"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

var Departments = []string{
	"สำนักปลัด",
	"กองสารบรรณ",
	"กองคลัง",
	"กองแผนงาน",
	"ศูนย์เทคโนโลยีสารสนเทศ",
}

// SeedUsers returns the first-run user list. Hashing on every call keeps
// the cleartext defaults out of stored constants.
func SeedUsers() []usermodel.User {
	return []usermodel.User{
		{
			ID:           "u1",
			Name:         "adisak boonprajak",
			Username:     "adisak",
			PasswordHash: mustHash("4152"),
			Role:         usermodel.RoleAdmin,
			Department:   "งานยานพาหนะและขนส่ง",
		},
		{
			ID:           "u2",
			Name:         "วิภาดา สู้งาน",
			Username:     "staff",
			PasswordHash: mustHash("1234"),
			Role:         usermodel.RoleStaff,
			Department:   "กองสารบรรณ",
		},
	}
}

func SeedDocuments() []documentmodel.Document {
	return []documentmodel.Document{
		{
			ID:          "d1",
			RegisterNo:  "รับ-001/2567",
			DocNo:       "ศธ 0201/1234",
			Subject:     "ขอเชิญประชุมวางแผนยุทธศาสตร์ประจำปี 2567",
			From:        "กระทรวงศึกษาธิการ",
			To:          "สำนักงานปลัด",
			Date:        "2023-10-25",
			Type:        documentmodel.TypeInbox,
			Status:      documentmodel.StatusPending,
			Priority:    documentmodel.PriorityUrgent,
			Category:    "การประชุม",
			Owner:       "วิภาดา สู้งาน",
			Attachments: []documentmodel.Attachment{},
			Tags:        []string{"ยุทธศาสตร์", "ประชุม"},
		},
		{
			ID:         "d2",
			RegisterNo: "รับ-002/2567",
			DocNo:      "กค 0402/5678",
			Subject:    "แจ้งมาตรการเร่งรัดการเบิกจ่ายงบประมาณ",
			From:       "กรมบัญชีกลาง",
			To:         "ทุกส่วนราชการ",
			Date:       "2023-10-26",
			Type:       documentmodel.TypeInbox,
			Status:     documentmodel.StatusInProcess,
			Priority:   documentmodel.PriorityNormal,
			Category:   "การเงิน",
			Owner:      "สมชาย รักชาติ",
			Attachments: []documentmodel.Attachment{
				{ID: "a1", Name: "scan_001.pdf", Type: documentmodel.AttachmentPDF, URL: "#"},
			},
			Tags: []string{"งบประมาณ"},
		},
		{
			ID:          "d3",
			RegisterNo:  "ส่ง-001/2567",
			DocNo:       "สป 0100/001",
			Subject:     "รายงานผลการดำเนินงานประจำไตรมาสที่ 1",
			From:        "สำนักงานปลัด",
			To:          "สำนักงบประมาณ",
			Date:        "2023-10-27",
			Type:        documentmodel.TypeOutbox,
			Status:      documentmodel.StatusCompleted,
			Priority:    documentmodel.PriorityNormal,
			Category:    "รายงาน",
			Owner:       "สมชาย รักชาติ",
			Attachments: []documentmodel.Attachment{},
			Tags:        []string{"รายงานผล"},
		},
	}
}

func SeedCategories() []string {
	return []string{"การเงิน", "การประชุม", "พัสดุ", "บุคคล", "รายงาน", "ทั่วไป"}
}

func SeedConfig() sysconfigmodel.SystemConfig {
	return sysconfigmodel.SystemConfig{
		OrgName:    "ระบบสารบรรณกลาง",
		FiscalYear: "2567",
	}
}
