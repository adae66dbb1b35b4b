package converter

import (
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"

	"github.com/google/uuid"
)

func InsertResult(id uuid.UUID) dto.InsertResult {
	return dto.InsertResult{Acknowledged: true, InsertedID: id.String()}
}

func UpdateOutcomeToResult(outcome *entity.UpdateOutcome) dto.UpdateResult {
	result := dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  outcome.MatchedCount,
		ModifiedCount: outcome.ModifiedCount,
		UpsertedCount: outcome.UpsertedCount,
	}
	if outcome.UpsertedID != nil {
		id := outcome.UpsertedID.String()
		result.UpsertedID = &id
	}
	return result
}

func DeleteResult(deleted int64) dto.DeleteResult {
	return dto.DeleteResult{Acknowledged: true, DeletedCount: deleted}
}
