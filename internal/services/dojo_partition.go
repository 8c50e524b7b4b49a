package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

type DojoPartition struct {
	// Upcoming holds dojos on or after the reference day, nearest first.
	Upcoming []models.Dojo
	// Happened holds dojos before the reference day, most recent first.
	Happened []models.Dojo
}

// PartitionDojos splits dojos around the calendar day of reference in location.
// Dojos sharing a day keep their input order in both lists.
func PartitionDojos(dojos []models.Dojo, reference time.Time, location *time.Location) DojoPartition {
	today := DateAtLocation(reference, location)
	partition := DojoPartition{
		Upcoming: make([]models.Dojo, 0, len(dojos)),
		Happened: make([]models.Dojo, 0),
	}

	for _, dojo := range dojos {
		if StoredDay(dojo.Day, location).Before(today) {
			partition.Happened = append(partition.Happened, dojo)
			continue
		}
		partition.Upcoming = append(partition.Upcoming, dojo)
	}

	sort.SliceStable(partition.Upcoming, func(i, j int) bool {
		return StoredDay(partition.Upcoming[i].Day, location).Before(StoredDay(partition.Upcoming[j].Day, location))
	})
	sort.SliceStable(partition.Happened, func(i, j int) bool {
		return StoredDay(partition.Happened[i].Day, location).After(StoredDay(partition.Happened[j].Day, location))
	})
	return partition
}
