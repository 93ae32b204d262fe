package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
)

func TestStatsEndpoint(t *testing.T) {
	app := newTestApp(t)
	id := createHabit(t, app, "Read")

	today := dates.Today()
	if resp, _ := doJSON(t, app, fiber.MethodPost, "/api/habits/"+id+"/checkins",
		map[string]interface{}{"date": today}); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("toggle status = %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/stats?days=7", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["end"] != today {
		t.Errorf("end = %v, want %s", body["end"], today)
	}

	series, ok := body["series"].([]interface{})
	if !ok || len(series) != 1 {
		t.Fatalf("series = %v, want one profile line", body["series"])
	}
	line := series[0].(map[string]interface{})
	if line["name"] != "Default" {
		t.Errorf("series name = %v", line["name"])
	}

	data := body["data"].([]interface{})
	if len(data) != 7 {
		t.Fatalf("data points = %d, want 7", len(data))
	}
	last := data[len(data)-1].(map[string]interface{})
	if last["date"] != today {
		t.Errorf("last point date = %v, want %s", last["date"], today)
	}
	percents := last["percents"].(map[string]interface{})
	if got := percents[line["profile_id"].(string)]; got != float64(100) {
		t.Errorf("today's percent = %v, want 100", got)
	}

	t.Run("days out of range falls back to 30", func(t *testing.T) {
		resp, body := doJSON(t, app, fiber.MethodGet, "/api/stats?days=9000", nil)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if data := body["data"].([]interface{}); len(data) != 30 {
			t.Errorf("data points = %d, want 30", len(data))
		}
	})
}

func TestOverviewEndpoint(t *testing.T) {
	app := newTestApp(t)
	id := createHabit(t, app, "Read")

	today := dates.Today()
	if resp, _ := doJSON(t, app, fiber.MethodPost, "/api/habits/"+id+"/checkins",
		map[string]interface{}{"date": today}); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("toggle status = %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/overview", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["today"] != today {
		t.Errorf("today = %v, want %s", body["today"], today)
	}
	if habits := body["habits"].([]interface{}); len(habits) != 1 {
		t.Errorf("habits = %d, want 1", len(habits))
	}

	completedByDate := body["completed_by_date"].(map[string]interface{})
	done, ok := completedByDate[today].([]interface{})
	if !ok || len(done) != 1 || done[0] != id {
		t.Errorf("completed_by_date[%s] = %v, want [%s]", today, completedByDate[today], id)
	}

	summary := body["summary"].(map[string]interface{})
	todayStats := summary["today"].(map[string]interface{})
	if todayStats["done"] != float64(1) || todayStats["total"] != float64(1) || todayStats["percent"] != float64(100) {
		t.Errorf("summary.today = %v", todayStats)
	}
}
