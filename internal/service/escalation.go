package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"community-guard/internal/identity"
	"community-guard/internal/logger"
	"community-guard/internal/models"
)

const minReasonLength = 5

// noSuspension marks warning counts that trigger nothing. A 0-day duration
// means a permanent suspension, which is a different thing.
const noSuspension = -1

// warningStepDurations maps the cumulative warning count to a suspension
// duration in days, clamped to the last entry for higher counts. One warning
// triggers nothing; from the second on the duration grows until it caps at
// permanent.
var warningStepDurations = []int{noSuspension, noSuspension, 3, 7, 14, 35, 0}

// warningSuspensionDays returns the suspension duration for the given
// cumulative warning count and whether a suspension is triggered at all.
func warningSuspensionDays(warningCount int) (int, bool) {
	if warningCount <= 0 {
		return 0, false
	}
	index := warningCount
	if index >= len(warningStepDurations) {
		index = len(warningStepDurations) - 1
	}
	days := warningStepDurations[index]
	if days == noSuspension {
		return 0, false
	}
	return days, true
}

// PunishmentResult is the advisory outcome of one ApplyPunishment call. The
// counters are the post-call values; Summary lists the actions taken for
// caller display and is not authoritative state.
type PunishmentResult struct {
	WarningCount     int      `json:"warningCount"`
	CautionRemainder int      `json:"cautionRemainder"`
	Summary          []string `json:"summary"`
}

// ApplyPunishment applies cautions, warnings and/or an explicit suspension to
// a user. Cautions pair off into warnings (two for one, remainder carried),
// the cumulative warning count is matched against the step table, and any
// triggered suspension overwrites the user's ban row.
//
// The ledger records of one call commit as a single atomic batch. The counter
// update and each suspension creation are separate writes with no rollback:
// a failure in between leaves the ledger committed but counters or ban state
// behind, and the caller must not blindly retry.
func ApplyPunishment(user, createdBy, reason string, addCautions, addWarnings int, suspensionDays *int) (*PunishmentResult, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < minReasonLength {
		return nil, newValidationError(msgReasonTooShort)
	}
	if addCautions < 0 || addWarnings < 0 {
		return nil, newValidationError(msgInvalidCounts)
	}
	if addCautions == 0 && addWarnings == 0 && (suspensionDays == nil || *suspensionDays < 0) {
		return nil, newValidationError(msgNothingToApply)
	}
	actor := identity.Normalize(createdBy)

	counters, err := getOrDefaultCounters(normalized)
	if err != nil {
		return nil, err
	}

	summary := []string{}
	newWarnings := addWarnings
	autoWarnings := 0

	var batch []*models.PunishmentRecord
	if addCautions > 0 {
		totalCautions := counters.CautionRemainder + addCautions
		autoWarnings = totalCautions / 2
		counters.CautionRemainder = totalCautions % 2
		newWarnings += autoWarnings

		batch = append(batch, &models.PunishmentRecord{
			UserKey:   normalized,
			Type:      models.PunishmentCaution,
			Count:     addCautions,
			Reason:    reason,
			CreatedBy: actor,
		})

		if autoWarnings > 0 {
			batch = append(batch, &models.PunishmentRecord{
				UserKey:   normalized,
				Type:      models.PunishmentWarning,
				Count:     autoWarnings,
				AutoFrom:  models.AutoFromCaution,
				Reason:    reason,
				CreatedBy: actor,
			})
			summary = append(summary, fmt.Sprintf("주의 %d회 → 경고 %d회 자동 전환", addCautions, autoWarnings))
		}
	}

	if newWarnings > 0 {
		batch = append(batch, &models.PunishmentRecord{
			UserKey:   normalized,
			Type:      models.PunishmentWarning,
			Count:     newWarnings,
			Reason:    reason,
			CreatedBy: actor,
		})
	}

	if err := punishmentRepository.CreateBatch(batch); err != nil {
		return nil, fmt.Errorf("committing ledger batch: %w", err)
	}

	previousWarnings := counters.WarningCount
	counters.WarningCount += newWarnings
	counters.UpdatedAt = time.Now()
	if err := counterRepository.Upsert(&counters); err != nil {
		// The ledger batch is already committed; see the partial-failure note
		// above.
		return nil, fmt.Errorf("updating punishment counters: %w", err)
	}

	autoDays := 0
	autoTriggered := false
	if counters.WarningCount > previousWarnings {
		autoDays, autoTriggered = warningSuspensionDays(counters.WarningCount)
	}

	if suspensionDays != nil && *suspensionDays >= 0 {
		summary = append(summary, "정지 "+suspensionLabel(*suspensionDays))
		if _, err := createSuspension(normalized, reason, suspensionDays, actor); err != nil {
			return nil, err
		}
	}

	if autoTriggered {
		summary = append(summary, "경고 누적에 따른 정지 "+suspensionLabel(autoDays))
		days := autoDays
		if _, err := createSuspension(normalized, reason+warningAccumSuffix, &days, actor); err != nil {
			return nil, err
		}
		logger.Infof("auto-suspension for %s: %d warnings -> %s", normalized, counters.WarningCount, suspensionLabel(autoDays))
	}

	return &PunishmentResult{
		WarningCount:     counters.WarningCount,
		CautionRemainder: counters.CautionRemainder,
		Summary:          summary,
	}, nil
}

// GetPunishmentCounters returns the user's counters, defaulting to the zero
// state when no row exists yet.
func GetPunishmentCounters(user string) (*models.PunishmentCounters, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}
	counters, err := getOrDefaultCounters(normalized)
	if err != nil {
		return nil, err
	}
	return &counters, nil
}

func getOrDefaultCounters(userKey string) (models.PunishmentCounters, error) {
	counters, err := counterRepository.Get(userKey)
	if err != nil {
		return models.PunishmentCounters{}, fmt.Errorf("reading punishment counters: %w", err)
	}
	if counters == nil {
		return models.PunishmentCounters{UserKey: userKey}, nil
	}
	return *counters, nil
}

// createSuspension writes the ban row (unless days is nil), the ban log entry
// and the suspension ledger record. A nil-days suspension is ledger-only;
// 0 days means permanent.
func createSuspension(userKey, reason string, days *int, createdBy string) (*time.Time, error) {
	var until *time.Time
	if days != nil && *days > 0 {
		t := time.Now().AddDate(0, 0, *days)
		until = &t
	}

	if days != nil {
		if err := saveBanRow(userKey, reason, until, createdBy); err != nil {
			return nil, err
		}
	}

	record := &models.PunishmentRecord{
		UserKey:      userKey,
		Type:         models.PunishmentSuspension,
		DurationDays: days,
		Until:        until,
		Reason:       reason,
		CreatedBy:    createdBy,
	}
	if err := punishmentRepository.Create(record); err != nil {
		return nil, fmt.Errorf("recording suspension: %w", err)
	}
	return until, nil
}

func suspensionLabel(days int) string {
	if days == 0 {
		return permanentLabel
	}
	return fmt.Sprintf("%d일", days)
}
