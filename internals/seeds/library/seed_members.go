package library

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	model "perpusku_backend/internals/features/library/members/model"
)

type MemberSeed struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address,omitempty"`
	Debt    int     `json:"debt"`
}

func SeedMembersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var members []MemberSeed
	if err := sonic.Unmarshal(file, &members); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, m := range members {
		var existing model.MemberModel
		if err := db.Where("email = ?", m.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Anggota dengan email %s sudah ada, lewati...", m.Email)
			continue
		}

		newMember := model.MemberModel{
			Name:    m.Name,
			Email:   m.Email,
			Address: m.Address,
			Debt:    m.Debt,
		}
		if err := db.Create(&newMember).Error; err != nil {
			log.Printf("❌ Gagal seed anggota %s: %v", m.Name, err)
			continue
		}
		log.Printf("✅ Anggota %s berhasil di-seed.", m.Name)
	}
}
