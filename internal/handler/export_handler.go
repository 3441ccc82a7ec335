package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

var exportHeaders = []string{"ID", "Вопрос", "Ответ", "ID категории", "Категория", "Сложность"}

// ExportQuestions выгружает весь банк вопросов в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, categories, err := h.questionService.ExportQuestions()
	if err != nil {
		handleServiceError(c, "QuestionHandler.ExportQuestions", err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		exportXLSX(c, questions, categories, filename)
	default:
		exportCSV(c, questions, categories, filename)
	}
}

// exportCSV пишет вопросы в CSV с BOM для Excel
func exportCSV(c *gin.Context, questions []entity.Question, categories entity.CategoryMap, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		log.Printf("[Export] Ошибка записи BOM: %v", err)
		return
	}

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		log.Printf("[Export] Ошибка записи заголовков CSV: %v", err)
		return
	}

	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.Category), 10),
			sanitizeForExcel(categories.Name(q.Category)),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			log.Printf("[Export] Ошибка записи строки CSV (вопрос %d): %v", q.ID, err)
			return
		}
	}
}

// exportXLSX пишет вопросы в Excel через StreamWriter
func exportXLSX(c *gin.Context, questions []entity.Question, categories entity.CategoryMap, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Printf("[Export] Ошибка переименования листа: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[Export] Ошибка создания StreamWriter: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[Export] Ошибка записи заголовков: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	for i, q := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			log.Printf("[Export] Ошибка вычисления ячейки: %v", err)
			respondError(c, http.StatusInternalServerError)
			return
		}
		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			q.Category,
			sanitizeForExcel(categories.Name(q.Category)),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[Export] Ошибка записи строки %d: %v", i+2, err)
			respondError(c, http.StatusInternalServerError)
			return
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[Export] Ошибка при Flush: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[Export] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
