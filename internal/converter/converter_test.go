package converter

import (
	"testing"

	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserRequestToEntity_NamesOnlySubmittedFields(t *testing.T) {
	user, fields := UpsertUserRequestToEntity("a@x.com", &dto.UpsertUserRequest{})
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, fields)

	user, fields = UpsertUserRequestToEntity("a@x.com", &dto.UpsertUserRequest{
		Name:    "Alice",
		Profile: map[string]interface{}{"phone": "123"},
	})
	assert.Equal(t, []string{"name", "profile"}, fields)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "123", user.Profile["phone"])
	assert.Equal(t, entity.Role(""), user.Role)
}

func TestUserToResponse_HidesRegularRole(t *testing.T) {
	admin := UserToResponse(&entity.User{Email: "a@x.com", Role: entity.RoleAdmin})
	assert.Equal(t, "admin", admin.Role)

	regular := UserToResponse(&entity.User{Email: "b@x.com", Role: entity.RoleRegular})
	assert.Empty(t, regular.Role)

	assert.Nil(t, UserToResponse(nil))
}

func TestUpdateOutcomeToResult(t *testing.T) {
	id := uuid.New()
	result := UpdateOutcomeToResult(&entity.UpdateOutcome{UpsertedCount: 1, UpsertedID: &id})
	assert.True(t, result.Acknowledged)
	require.NotNil(t, result.UpsertedID)
	assert.Equal(t, id.String(), *result.UpsertedID)

	result = UpdateOutcomeToResult(&entity.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1})
	assert.Nil(t, result.UpsertedID)
	assert.Equal(t, int64(1), result.MatchedCount)
}

func TestServicesToAvailable_CopiesSlots(t *testing.T) {
	services := []entity.Service{{Name: "Cleaning", Slots: entity.SlotList{"9am"}}}
	available := ServicesToAvailable(services)
	available[0].Slots[0] = "changed"
	assert.Equal(t, "9am", services[0].Slots[0])

	summaries := ServicesToSummaries(services)
	assert.Equal(t, "Cleaning", summaries[0].Name)
}
