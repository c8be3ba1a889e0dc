package domain

// PlantCategory is the botanical grouping a user files a plant under.
type PlantCategory string

const (
	PlantCategoryVegetable  PlantCategory = "vegetable"
	PlantCategoryHerb       PlantCategory = "herb"
	PlantCategoryFlower     PlantCategory = "flower"
	PlantCategoryTree       PlantCategory = "tree"
	PlantCategorySucculent  PlantCategory = "succulent"
	PlantCategoryHouseplant PlantCategory = "houseplant"
)

func (c PlantCategory) String() string { return string(c) }

func (c PlantCategory) IsValid() bool {
	switch c {
	case PlantCategoryVegetable, PlantCategoryHerb, PlantCategoryFlower,
		PlantCategoryTree, PlantCategorySucculent, PlantCategoryHouseplant:
		return true
	}
	return false
}

// PlantLocation is where a plant grows.
type PlantLocation string

const (
	PlantLocationOutdoor    PlantLocation = "outdoor"
	PlantLocationIndoor     PlantLocation = "indoor"
	PlantLocationGreenhouse PlantLocation = "greenhouse"
	PlantLocationBalcony    PlantLocation = "balcony"
	PlantLocationContainer  PlantLocation = "container"
)

func (l PlantLocation) String() string { return string(l) }

func (l PlantLocation) IsValid() bool {
	switch l {
	case PlantLocationOutdoor, PlantLocationIndoor, PlantLocationGreenhouse,
		PlantLocationBalcony, PlantLocationContainer:
		return true
	}
	return false
}

// PlantStatus is both the user-settable stored status and the derived display status.
type PlantStatus string

const (
	PlantStatusHealthy    PlantStatus = "healthy"
	PlantStatusNeedsWater PlantStatus = "needs water"
	PlantStatusNeedsCare  PlantStatus = "needs care"
	PlantStatusDormant    PlantStatus = "dormant"
)

func (s PlantStatus) String() string { return string(s) }

func (s PlantStatus) IsValid() bool {
	switch s {
	case PlantStatusHealthy, PlantStatusNeedsWater, PlantStatusNeedsCare, PlantStatusDormant:
		return true
	}
	return false
}

// CareEventType is the kind of care action logged against a plant.
type CareEventType string

const (
	CareEventWatering    CareEventType = "watering"
	CareEventFertilizing CareEventType = "fertilizing"
	CareEventPruning     CareEventType = "pruning"
	CareEventRepotting   CareEventType = "repotting"
	CareEventOther       CareEventType = "other"
)

func (t CareEventType) String() string { return string(t) }

func (t CareEventType) IsValid() bool {
	switch t {
	case CareEventWatering, CareEventFertilizing, CareEventPruning, CareEventRepotting, CareEventOther:
		return true
	}
	return false
}

// ExperienceLevel is the gardener's self-reported skill.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (e ExperienceLevel) String() string { return string(e) }

func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}
