package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-guard/internal/models"
)

func TestWarningSuspensionDays(t *testing.T) {
	tests := []struct {
		warningCount  int
		wantDays      int
		wantTriggered bool
	}{
		{warningCount: 0, wantTriggered: false},
		{warningCount: 1, wantTriggered: false},
		{warningCount: 2, wantDays: 3, wantTriggered: true},
		{warningCount: 3, wantDays: 7, wantTriggered: true},
		{warningCount: 4, wantDays: 14, wantTriggered: true},
		{warningCount: 5, wantDays: 35, wantTriggered: true},
		{warningCount: 6, wantDays: 0, wantTriggered: true},
		{warningCount: 7, wantDays: 0, wantTriggered: true},
		{warningCount: 12, wantDays: 0, wantTriggered: true},
	}

	for _, tc := range tests {
		days, triggered := warningSuspensionDays(tc.warningCount)
		if triggered != tc.wantTriggered {
			t.Fatalf("warningSuspensionDays(%d) triggered = %v, want %v", tc.warningCount, triggered, tc.wantTriggered)
		}
		if triggered && days != tc.wantDays {
			t.Fatalf("warningSuspensionDays(%d) = %d days, want %d", tc.warningCount, days, tc.wantDays)
		}
	}
}

func TestApplyPunishmentValidation(t *testing.T) {
	newTestDB(t)

	tests := []struct {
		name           string
		user           string
		reason         string
		addCautions    int
		addWarnings    int
		suspensionDays *int
	}{
		{name: "empty user", user: "", reason: "규칙 위반입니다", addWarnings: 1},
		{name: "four char reason", user: "a@x.com", reason: "abcd", addWarnings: 1},
		{name: "negative cautions", user: "a@x.com", reason: "규칙 위반입니다", addCautions: -1},
		{name: "nothing to apply", user: "a@x.com", reason: "규칙 위반입니다"},
		{name: "negative suspension only", user: "a@x.com", reason: "규칙 위반입니다", suspensionDays: intPtr(-1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyPunishment(tc.user, "mod@x.com", tc.reason, tc.addCautions, tc.addWarnings, tc.suspensionDays)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}

	// Five characters is the minimum that passes.
	_, err := ApplyPunishment("a@x.com", "mod@x.com", "abcde", 0, 1, nil)
	require.NoError(t, err)
}

func TestCautionConversion(t *testing.T) {
	tests := []struct {
		name          string
		prevRemainder int
		addCautions   int
		wantWarnings  int
		wantRemainder int
	}{
		{name: "two cautions convert", prevRemainder: 0, addCautions: 2, wantWarnings: 1, wantRemainder: 0},
		{name: "one caution carries", prevRemainder: 0, addCautions: 1, wantWarnings: 0, wantRemainder: 1},
		{name: "carried remainder pairs up", prevRemainder: 1, addCautions: 1, wantWarnings: 1, wantRemainder: 0},
		{name: "three cautions", prevRemainder: 0, addCautions: 3, wantWarnings: 1, wantRemainder: 1},
		{name: "remainder plus four", prevRemainder: 1, addCautions: 4, wantWarnings: 2, wantRemainder: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			newTestDB(t)
			user := "caution@x.com"
			if tc.prevRemainder > 0 {
				require.NoError(t, counterRepository.Upsert(&models.PunishmentCounters{
					UserKey:          user,
					CautionRemainder: tc.prevRemainder,
				}))
			}

			result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", tc.addCautions, 0, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWarnings, result.WarningCount)
			assert.Equal(t, tc.wantRemainder, result.CautionRemainder)
		})
	}
}

func TestCautionRemainderInvariant(t *testing.T) {
	newTestDB(t)
	user := "invariant@x.com"

	for _, cautions := range []int{1, 3, 2, 5, 1, 1, 4} {
		result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", cautions, 0, nil)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 1}, result.CautionRemainder)

		counters, err := GetPunishmentCounters(user)
		require.NoError(t, err)
		assert.Equal(t, result.CautionRemainder, counters.CautionRemainder)
	}
}

func TestThreeCautionScenario(t *testing.T) {
	// End-to-end scenario from the step-table design: 3 cautions on a fresh
	// user, then 1 more.
	newTestDB(t)
	user := "a@x.com"

	result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, 1, result.CautionRemainder)

	records, err := FetchRecentPunishments(user, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	byType := map[string][]models.PunishmentRecord{}
	for _, r := range records {
		byType[r.Type] = append(byType[r.Type], r)
	}
	require.Len(t, byType[models.PunishmentCaution], 1)
	assert.Equal(t, 3, byType[models.PunishmentCaution][0].Count)

	// One auto-converted warning record plus the combined warning record.
	require.Len(t, byType[models.PunishmentWarning], 2)
	autoSeen := false
	for _, w := range byType[models.PunishmentWarning] {
		assert.Equal(t, 1, w.Count)
		if w.AutoFrom == models.AutoFromCaution {
			autoSeen = true
		}
	}
	assert.True(t, autoSeen, "expected a warning record tagged autoFrom=caution")

	// One warning does not trigger a suspension.
	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	assert.Nil(t, ban)

	// One more caution pairs with the carried remainder: second warning,
	// 3-day suspension.
	result, err = ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.WarningCount)
	assert.Equal(t, 0, result.CautionRemainder)

	ban, err = FetchActiveBan(user)
	require.NoError(t, err)
	require.NotNil(t, ban)
	require.NotNil(t, ban.Until)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), *ban.Until, time.Minute)
}

func TestAutoSuspensionTransitions(t *testing.T) {
	newTestDB(t)
	user := "steps@x.com"

	wantDays := []int{noSuspension, 3, 7, 14, 35}
	for i, days := range wantDays {
		result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 0, 1, nil)
		require.NoError(t, err)
		require.Equal(t, i+1, result.WarningCount)

		ban, err := FetchActiveBan(user)
		require.NoError(t, err)
		if days == noSuspension {
			assert.Nil(t, ban, "no suspension expected at warning count %d", i+1)
			continue
		}
		require.NotNil(t, ban, "suspension expected at warning count %d", i+1)
		require.NotNil(t, ban.Until)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, days), *ban.Until, time.Minute)
	}

	// The sixth warning escalates to a permanent suspension.
	result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 0, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 6, result.WarningCount)

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Nil(t, ban.Until, "permanent suspension has no expiry")
}

func TestExplicitSuspension(t *testing.T) {
	newTestDB(t)
	user := "explicit@x.com"

	result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 0, 0, intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, 0, result.WarningCount)
	assert.Contains(t, result.Summary, "정지 10일")

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	require.NotNil(t, ban)
	require.NotNil(t, ban.Until)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 10), *ban.Until, time.Minute)

	records, err := FetchRecentPunishments(user, 3)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.PunishmentSuspension, records[0].Type)
	require.NotNil(t, records[0].DurationDays)
	assert.Equal(t, 10, *records[0].DurationDays)
}

func TestExplicitZeroDaysIsPermanent(t *testing.T) {
	newTestDB(t)
	user := "permanent@x.com"

	result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 0, 0, intPtr(0))
	require.NoError(t, err)
	assert.Contains(t, result.Summary, "정지 영구")

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Nil(t, ban.Until)
}

func TestExplicitAndAutoSuspensionSameCall(t *testing.T) {
	newTestDB(t)
	user := "double@x.com"

	require.NoError(t, counterRepository.Upsert(&models.PunishmentCounters{
		UserKey:      user,
		WarningCount: 1,
	}))

	// The explicit 30-day ban is written first; the warning-triggered 3-day
	// ban overwrites it.
	result, err := ApplyPunishment(user, "mod@x.com", "규칙 위반입니다", 0, 1, intPtr(30))
	require.NoError(t, err)
	assert.Equal(t, 2, result.WarningCount)

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Contains(t, ban.Reason, "(경고 누적)")
	require.NotNil(t, ban.Until)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), *ban.Until, time.Minute)

	// Each suspension wrote its own ledger record and audit entry.
	records, err := FetchRecentPunishments(user, 3)
	require.NoError(t, err)
	suspensions := 0
	for _, r := range records {
		if r.Type == models.PunishmentSuspension {
			suspensions++
		}
	}
	assert.Equal(t, 2, suspensions)

	logs, err := FetchBanLogs()
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestCreateSuspensionNilDays(t *testing.T) {
	newTestDB(t)
	user := "nildays@x.com"

	until, err := createSuspension(user, "규칙 위반입니다", nil, "mod@x.com")
	require.NoError(t, err)
	assert.Nil(t, until)

	// Ledger-only: the record exists with a null duration, no ban row.
	records, err := FetchRecentPunishments(user, 3)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.PunishmentSuspension, records[0].Type)
	assert.Nil(t, records[0].DurationDays)

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	assert.Nil(t, ban)
}

func TestGetPunishmentCountersDefaults(t *testing.T) {
	newTestDB(t)

	counters, err := GetPunishmentCounters("Fresh@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "fresh@x.com", counters.UserKey)
	assert.Equal(t, 0, counters.WarningCount)
	assert.Equal(t, 0, counters.CautionRemainder)

	_, err = GetPunishmentCounters("  ")
	assert.True(t, IsValidationError(err))
}
