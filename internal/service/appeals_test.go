package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-guard/internal/models"
)

func TestCreateAppealValidation(t *testing.T) {
	newTestDB(t)

	_, err := CreateAppeal("", 0, "부당한 처벌입니다")
	assert.True(t, IsValidationError(err))

	_, err = CreateAppeal("user@x.com", 0, "억울")
	assert.True(t, IsValidationError(err))

	appeal, err := CreateAppeal("User@X.com ", 7, "부당한 처벌입니다")
	require.NoError(t, err)
	assert.Equal(t, "user@x.com", appeal.UserKey)
	assert.Equal(t, uint(7), appeal.PunishmentID)
	assert.Equal(t, models.AppealOpen, appeal.Status)
}

func TestResolveAppealApprovedRevokesBan(t *testing.T) {
	newTestDB(t)
	user := "appellant@x.com"

	require.NoError(t, SaveBan(user, "차단 사유입니다", nil, "mod@x.com"))
	appeal, err := CreateAppeal(user, 0, "부당한 처벌입니다")
	require.NoError(t, err)

	require.NoError(t, ResolveAppeal(appeal.ID, models.AppealApproved, "정당한 이의제기로 판단됨", true))

	resolved, err := appealRepository.GetByID(appeal.ID)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, models.AppealApproved, resolved.Status)
	assert.Equal(t, "정당한 이의제기로 판단됨", resolved.StatusReason)
	assert.NotNil(t, resolved.ResolvedAt)

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	assert.Nil(t, ban, "approval with revoke clears the active ban")

	logs, err := FetchBanLogs()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.BanActionUnban, logs[0].Action)
}

func TestResolveAppealWithoutRevokeKeepsBan(t *testing.T) {
	newTestDB(t)
	user := "kept@x.com"

	require.NoError(t, SaveBan(user, "차단 사유입니다", nil, "mod@x.com"))
	appeal, err := CreateAppeal(user, 0, "부당한 처벌입니다")
	require.NoError(t, err)

	// Approval without revoke is allowed; the coupling is caller policy.
	require.NoError(t, ResolveAppeal(appeal.ID, models.AppealApproved, "사정 참작", false))

	ban, err := FetchActiveBan(user)
	require.NoError(t, err)
	assert.NotNil(t, ban)
}

func TestResolveAppealValidations(t *testing.T) {
	newTestDB(t)

	err := ResolveAppeal(1, "banana", "사유", false)
	assert.True(t, IsValidationError(err))

	err = ResolveAppeal(12345, models.AppealRejected, "사유", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchPendingAppeals(t *testing.T) {
	newTestDB(t)

	open, err := CreateAppeal("open@x.com", 0, "부당한 처벌입니다")
	require.NoError(t, err)
	held, err := CreateAppeal("held@x.com", 0, "부당한 처벌입니다")
	require.NoError(t, err)
	done, err := CreateAppeal("done@x.com", 0, "부당한 처벌입니다")
	require.NoError(t, err)

	require.NoError(t, ResolveAppeal(held.ID, models.AppealOnHold, "추가 확인 필요", false))
	require.NoError(t, ResolveAppeal(done.ID, models.AppealRejected, "근거 없음", false))

	pending, err := FetchPendingAppeals()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	ids := []uint{pending[0].ID, pending[1].ID}
	assert.Contains(t, ids, open.ID)
	assert.Contains(t, ids, held.ID)

	all, err := FetchAppeals()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
