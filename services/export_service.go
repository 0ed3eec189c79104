package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"AgileMoodGo/models"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"ID", "Usuário", "Emoção", "Intensidade", "Anônimo", "Notas", "Data de Criação"}

const exportTimeLayout = "2006-01-02 15:04:05"

func exportRow(r models.EmotionRecord, byID map[uint]models.TeamEmotion, memberName map[string]string) []string {
	userName := AnonymousUserName
	if !r.IsAnonymous && r.UserID != nil {
		userName = memberName[*r.UserID]
	}

	emotionName := ""
	if e, ok := byID[r.EmotionID]; ok {
		emotionName = e.Label()
	}

	anonymous := "Não"
	if r.IsAnonymous {
		anonymous = "Sim"
	}

	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		userName,
		emotionName,
		strconv.Itoa(r.Intensity),
		anonymous,
		r.Notes,
		r.CreatedAt.Format(exportTimeLayout),
	}
}

func memberNames(members []models.MemberResponse) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

// ExportReportsCSV serializes reports in the dashboard's CSV layout. Notes
// containing commas or quotes come out properly quoted.
func ExportReportsCSV(reports []models.EmotionRecord, catalog []models.TeamEmotion, members []models.MemberResponse) ([]byte, error) {
	byID := indexCatalog(catalog)
	names := memberNames(members)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if err := w.Write(exportRow(r, byID, names)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportReportsXLSX writes the same table as a spreadsheet.
func ExportReportsXLSX(reports []models.EmotionRecord, catalog []models.TeamEmotion, members []models.MemberResponse) ([]byte, error) {
	byID := indexCatalog(catalog)
	names := memberNames(members)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, r := range reports {
		row := exportRow(r, byID, names)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename encodes the team and, when present, the sprint name or the
// active date range.
func ExportFilename(teamID uint, sprintName string, rng *models.DateRange, ext string) string {
	name := fmt.Sprintf("emocoes_equipe_%d", teamID)
	switch {
	case sprintName != "":
		name += "_" + sanitizeFilePart(sprintName)
	case rng != nil && (rng.From != nil || rng.To != nil):
		name += "_" + rangeFilePart(rng)
	}
	return name + "." + ext
}

func rangeFilePart(rng *models.DateRange) string {
	const layout = "2006-01-02"
	from, to := "inicio", "hoje"
	if rng.From != nil {
		from = rng.From.Format(layout)
	}
	if rng.To != nil {
		to = rng.To.Format(layout)
	}
	return from + "_a_" + to
}

func sanitizeFilePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		case c == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return fmt.Sprintf("export_%d", time.Now().Unix())
	}
	return string(out)
}
