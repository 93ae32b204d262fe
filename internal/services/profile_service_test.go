package services_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
	"github.com/iammeliaskhan/habit-tracker/internal/services"
)

func TestEnsureDefaultIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	first, err := svc.EnsureDefault()
	if err != nil {
		t.Fatalf("EnsureDefault: %v", err)
	}
	if first.Name != "Default" {
		t.Errorf("default profile name = %q, want Default", first.Name)
	}

	second, err := svc.EnsureDefault()
	if err != nil {
		t.Fatalf("EnsureDefault (second): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("EnsureDefault created a second profile: %s != %s", second.ID, first.ID)
	}

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	if count != 1 {
		t.Errorf("profile count = %d, want 1", count)
	}
}

func TestEnsureDefaultReturnsOldest(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	oldest, err := svc.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(oldest.ID, "Newer", nil); err != nil {
		t.Fatal(err)
	}

	got, err := svc.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != oldest.ID {
		t.Errorf("EnsureDefault = %s, want oldest %s", got.ID, oldest.ID)
	}
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	def, err := svc.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}
	other, err := svc.Create(def.ID, "Kim", nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid cookie", func(t *testing.T) {
		got, err := svc.Resolve(other.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != other.ID {
			t.Errorf("Resolve = %s, want %s", got.ID, other.ID)
		}
	})

	t.Run("stale cookie falls back to default", func(t *testing.T) {
		got, err := svc.Resolve(uuid.New())
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != def.ID {
			t.Errorf("Resolve = %s, want default %s", got.ID, def.ID)
		}
	})

	t.Run("missing cookie falls back to default", func(t *testing.T) {
		got, err := svc.Resolve(uuid.Nil)
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != def.ID {
			t.Errorf("Resolve = %s, want default %s", got.ID, def.ID)
		}
	})
}

func TestCreateProfileInheritsActiveHabits(t *testing.T) {
	db := newTestDB(t)
	profiles := services.NewProfileService(db)
	habits := services.NewHabitService(db)

	def, err := profiles.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}

	color := "#22c55e"
	for _, name := range []string{"Read", "Workout", "Meditate"} {
		if _, err := habits.Create(def.ID, name, &color); err != nil {
			t.Fatal(err)
		}
	}

	// Archived habits are not inherited.
	archivedHabit, err := habits.Create(def.ID, "Old habit", nil)
	if err != nil {
		t.Fatal(err)
	}
	archived := true
	if _, err := habits.Update(archivedHabit.ID, def.ID, nil, nil, &archived); err != nil {
		t.Fatal(err)
	}

	// A check-in on a source habit must not carry over.
	source, err := habits.ListActive(def.ID)
	if err != nil {
		t.Fatal(err)
	}
	day := mustParse(t, "2024-03-01")
	if _, err := habits.Toggle(source[0].ID, def.ID, day, nil); err != nil {
		t.Fatal(err)
	}

	created, err := profiles.Create(def.ID, "Kim", nil)
	if err != nil {
		t.Fatal(err)
	}

	inherited, err := habits.ListActive(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(inherited) != 3 {
		t.Fatalf("inherited habits = %d, want 3", len(inherited))
	}
	for _, h := range inherited {
		if h.Color == nil || *h.Color != color {
			t.Errorf("habit %q color not copied", h.Name)
		}
	}

	var checkInCount int64
	habitIDs := make([]uuid.UUID, len(inherited))
	for i, h := range inherited {
		habitIDs[i] = h.ID
	}
	db.Model(&models.CheckIn{}).Where("habit_id IN ?", habitIDs).Count(&checkInCount)
	if checkInCount != 0 {
		t.Errorf("new profile has %d check-ins, want 0", checkInCount)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	def, err := svc.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}

	badColor := "not-a-color"
	_, err = svc.Create(def.ID, "   ", &badColor)

	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Create error = %v, want ValidationError", err)
	}
	fields := make(map[string]bool)
	for _, issue := range ve.Issues {
		fields[issue.Field] = true
	}
	if !fields["name"] || !fields["color"] {
		t.Errorf("issues cover fields %v, want name and color", fields)
	}
}

func TestDeleteActiveProfileRejected(t *testing.T) {
	db := newTestDB(t)
	profiles := services.NewProfileService(db)
	habits := services.NewHabitService(db)

	def, err := profiles.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := habits.Create(def.ID, "Read", nil); err != nil {
		t.Fatal(err)
	}

	err = profiles.Delete(def.ID, def.ID)
	if !errors.Is(err, services.ErrProfileIsActive) {
		t.Fatalf("Delete(active) error = %v, want ErrProfileIsActive", err)
	}

	// No mutation happened.
	var profileCount, habitCount int64
	db.Model(&models.Profile{}).Count(&profileCount)
	db.Model(&models.Habit{}).Count(&habitCount)
	if profileCount != 1 || habitCount != 1 {
		t.Errorf("counts after rejected delete = %d profiles, %d habits", profileCount, habitCount)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	db := newTestDB(t)
	profiles := services.NewProfileService(db)
	habits := services.NewHabitService(db)

	def, err := profiles.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}
	victim, err := profiles.Create(def.ID, "Victim", nil)
	if err != nil {
		t.Fatal(err)
	}
	habit, err := habits.Create(victim.ID, "Read", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := habits.Toggle(habit.ID, victim.ID, mustParse(t, "2024-03-01"), nil); err != nil {
		t.Fatal(err)
	}

	if err := profiles.Delete(victim.ID, def.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var habitCount, checkInCount int64
	db.Model(&models.Habit{}).Where("profile_id = ?", victim.ID).Count(&habitCount)
	db.Model(&models.CheckIn{}).Where("habit_id = ?", habit.ID).Count(&checkInCount)
	if habitCount != 0 || checkInCount != 0 {
		t.Errorf("cascade left %d habits, %d check-ins", habitCount, checkInCount)
	}
}

func TestDeleteUnknownProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	def, err := svc.EnsureDefault()
	if err != nil {
		t.Fatal(err)
	}

	err = svc.Delete(uuid.New(), def.ID)
	if !errors.Is(err, services.ErrProfileNotFound) {
		t.Errorf("Delete(unknown) error = %v, want ErrProfileNotFound", err)
	}
}
