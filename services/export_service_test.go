package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"AgileMoodGo/models"
)

func TestExportReportsCSV(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	catalog := testCatalog()
	members := []models.MemberResponse{{ID: "u1", Name: "Ana"}}

	r1 := report(1, 4, now)
	r1.ID = 10
	r1.UserID = strPtr("u1")
	r1.Notes = `reunião difícil, mas produtiva e "intensa"`
	r2 := report(2, 2, now)
	r2.ID = 11
	r2.IsAnonymous = true

	data, err := ExportReportsCSV([]models.EmotionRecord{r1, r2}, catalog, members)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse back: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 reports)", len(lines))
	}

	header := strings.Join(lines[0], ",")
	if header != "ID,Usuário,Emoção,Intensidade,Anônimo,Notas,Data de Criação" {
		t.Errorf("header = %q", header)
	}

	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d has %d fields, want %d", i, len(line), len(lines[0]))
		}
	}

	if lines[1][1] != "Ana" {
		t.Errorf("user column = %q, want Ana", lines[1][1])
	}
	if lines[1][5] != r1.Notes {
		t.Errorf("notes column = %q, want the quoted original %q", lines[1][5], r1.Notes)
	}
	if lines[2][1] != AnonymousUserName {
		t.Errorf("anonymous user column = %q, want %q", lines[2][1], AnonymousUserName)
	}
	if lines[2][4] != "Sim" {
		t.Errorf("anonymous flag = %q, want Sim", lines[2][4])
	}
}

func TestExportReportsCSVEmpty(t *testing.T) {
	data, err := ExportReportsCSV(nil, testCatalog(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse back: %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}

func TestExportReportsXLSX(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	r := report(1, 4, now)
	r.ID = 10

	data, err := ExportReportsXLSX([]models.EmotionRecord{r}, testCatalog(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("workbook does not look like a zip archive")
	}
}

func TestExportFilename(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		sprintName string
		rng        *models.DateRange
		want       string
	}{
		{"plain", "", nil, "emocoes_equipe_7.csv"},
		{"sprint wins over range", "Sprint 12", &models.DateRange{From: &from}, "emocoes_equipe_7_Sprint_12.csv"},
		{"full range", "", &models.DateRange{From: &from, To: &to}, "emocoes_equipe_7_2025-03-01_a_2025-03-15.csv"},
		{"open-ended range", "", &models.DateRange{From: &from}, "emocoes_equipe_7_2025-03-01_a_hoje.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExportFilename(7, tt.sprintName, tt.rng, "csv")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
