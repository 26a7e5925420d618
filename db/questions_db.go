package db

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

// GetAllQuestions loads the full catalog in authored option order. Rows that
// fail validation are skipped with a log line so one bad row never poisons
// quiz generation.
func (db *DB) GetAllQuestions() ([]models.QuestionTemplate, error) {
	utils.LogDB("Loading question catalog")
	start := time.Now()

	rows, err := db.Query(`
		SELECT id, topic, question, options, correct_option, created_at, updated_at
		FROM questions
		ORDER BY created_at ASC
	`)
	if err != nil {
		utils.LogError("GetAllQuestions query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var catalog []models.QuestionTemplate
	skipped := 0
	for rows.Next() {
		var q models.QuestionTemplate
		var optionsJSON string

		if err := rows.Scan(&q.ID, &q.Topic, &q.Question, &optionsJSON, &q.CorrectOption, &q.CreatedAt, &q.UpdatedAt); err != nil {
			utils.LogError("Failed to scan question row: %v", err)
			return nil, err
		}

		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			utils.LogDB("Question %s has malformed options, skipping: %v", q.ID, err)
			skipped++
			continue
		}

		if err := q.Validate(); err != nil {
			utils.LogDB("Question failed validation, skipping: %v", err)
			skipped++
			continue
		}

		catalog = append(catalog, q)
	}

	duration := time.Since(start)
	utils.LogDB("Catalog loaded: %d questions (%d skipped) in %v", len(catalog), skipped, duration)
	return catalog, nil
}

// CountQuestions returns the catalog size, used to decide whether the seed
// bank needs applying.
func (db *DB) CountQuestions() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		utils.LogError("CountQuestions failed: %v", err)
		return 0, err
	}
	return count, nil
}

// ImportQuestions bulk-inserts catalog entries, validating each row and
// skipping duplicates by normalized question text.
func (db *DB) ImportQuestions(importReq models.ImportRequest) (*models.ImportResult, error) {
	utils.LogImport("Starting import of %d questions", len(importReq.Questions))
	start := time.Now()

	result := &models.ImportResult{
		TotalQuestions: len(importReq.Questions),
		Errors:         make([]string, 0),
	}

	tx, err := db.Begin()
	if err != nil {
		utils.LogError("Failed to start transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO questions (id, topic, question, options, correct_option)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		utils.LogError("Failed to prepare statement: %v", err)
		return nil, err
	}
	defer stmt.Close()

	existing := make(map[string]bool)
	rows, err := db.Query("SELECT question FROM questions")
	if err != nil {
		utils.LogError("Failed to fetch existing questions: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var question string
		if err := rows.Scan(&question); err != nil {
			utils.LogError("Failed to scan existing question: %v", err)
			continue
		}
		existing[utils.NormalizeQuestionKey(question)] = true
	}

	utils.LogImport("Found %d existing questions to check for duplicates", len(existing))

	for i, q := range importReq.Questions {
		if strings.TrimSpace(q.Question) == "" {
			skip(result, fmt.Sprintf("Question %d: empty question text", i+1))
			continue
		}

		if len(q.Options) < 2 {
			skip(result, fmt.Sprintf("Question %d: must have at least 2 options", i+1))
			continue
		}

		correctInOptions := false
		for _, opt := range q.Options {
			if utils.NormalizeAnswer(opt) == utils.NormalizeAnswer(q.CorrectOption) {
				correctInOptions = true
				break
			}
		}
		if !correctInOptions {
			skip(result, fmt.Sprintf("Question %d: correct option '%s' not found in options", i+1, q.CorrectOption))
			continue
		}

		topic := strings.ToLower(strings.TrimSpace(q.Topic))
		if topic != "" && !models.ValidTopic(topic) {
			skip(result, fmt.Sprintf("Question %d: unknown topic '%s', must be one of: %v", i+1, q.Topic, models.Topics))
			continue
		}

		key := utils.NormalizeQuestionKey(q.Question)
		if existing[key] {
			skip(result, fmt.Sprintf("Question %d: duplicate question already exists", i+1))
			continue
		}

		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			skip(result, fmt.Sprintf("Question %d: failed to marshal options: %v", i+1, err))
			continue
		}

		_, err = stmt.Exec(
			uuid.NewString(),
			topic,
			strings.TrimSpace(q.Question),
			string(optionsJSON),
			strings.TrimSpace(q.CorrectOption),
		)
		if err != nil {
			errMsg := fmt.Sprintf("Question %d: database insert failed: %v", i+1, err)
			utils.LogError("%s", errMsg)
			result.Errors = append(result.Errors, errMsg)
			result.SkippedQuestions++
			continue
		}

		existing[key] = true
		result.ImportedQuestions++

		if (i+1)%10 == 0 || i+1 == len(importReq.Questions) {
			utils.LogImport("Progress: %d/%d questions processed", i+1, len(importReq.Questions))
		}
	}

	if err := tx.Commit(); err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		return nil, err
	}

	duration := time.Since(start)
	result.TimeTaken = duration.String()

	utils.LogImport("Import completed: %d imported, %d skipped, %d errors in %v",
		result.ImportedQuestions, result.SkippedQuestions, len(result.Errors), duration)

	return result, nil
}

func skip(result *models.ImportResult, msg string) {
	utils.LogImport("SKIP: %s", msg)
	result.Errors = append(result.Errors, msg)
	result.SkippedQuestions++
}

// SeedCatalogIfEmpty applies the built-in question bank the first time the
// service boots against a fresh database.
func (db *DB) SeedCatalogIfEmpty() error {
	count, err := db.CountQuestions()
	if err != nil {
		return err
	}
	if count > 0 {
		utils.LogDB("Catalog already holds %d questions, skipping seed", count)
		return nil
	}

	utils.LogImport("Seeding catalog with built-in question bank")
	result, err := db.ImportQuestions(models.ImportRequest{Questions: seedBank()})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	utils.LogImport("Seed complete: %d questions", result.ImportedQuestions)
	return nil
}
