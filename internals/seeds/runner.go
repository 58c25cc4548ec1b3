package seeds

import (
	"log"

	"gorm.io/gorm"

	college "college_backend/internals/seeds/college"
)

const defaultTimetableSeed = "internals/seeds/college/data_timetable.json"

// RunAllSeeds loads the development fixtures. path overrides the default
// timetable fixture when non-empty.
func RunAllSeeds(db *gorm.DB, path string) {
	if path == "" {
		path = defaultTimetableSeed
	}

	//* Timetable
	if err := college.SeedTimetableFromJSON(db, path); err != nil {
		log.Printf("❌ Timetable seed failed: %v", err)
		return
	}
	log.Println("✅ Seeds done.")
}
