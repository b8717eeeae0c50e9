package mcapimodels

import (
	"encoding/json"
	"testing"

	"admin-dashboard-backend/models"

	"github.com/stretchr/testify/require"
)

func TestSubmitRequestValidate(t *testing.T) {
	t.Run("create must not carry a target id", func(t *testing.T) {
		request := SubmitRequest{
			EntityType:     string(models.EntityTypeProduct),
			Operation:      string(models.OperationCreate),
			TargetEntityID: "some-id",
			Fields:         json.RawMessage(`{"code":"SKU-1"}`),
		}
		require.Error(t, request.Validate())

		request.TargetEntityID = ""
		require.NoError(t, request.Validate())
	})

	t.Run("update and delete require a target id", func(t *testing.T) {
		request := SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  string(models.OperationUpdate),
			Fields:     json.RawMessage(`{"price":1.5}`),
		}
		require.Error(t, request.Validate())

		request.TargetEntityID = "some-id"
		require.NoError(t, request.Validate())

		request = SubmitRequest{
			EntityType:     string(models.EntityTypeProduct),
			Operation:      string(models.OperationDelete),
			TargetEntityID: "some-id",
		}
		require.NoError(t, request.Validate())
	})

	t.Run("fields are mandatory except for delete", func(t *testing.T) {
		request := SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  string(models.OperationCreate),
		}
		require.Error(t, request.Validate())
	})

	t.Run("unknown operation", func(t *testing.T) {
		request := SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  "PATCH",
			Fields:     json.RawMessage(`{"price":1.5}`),
		}
		require.Error(t, request.Validate())
	})
}

func TestListRequestStatusFilter(t *testing.T) {
	require.Nil(t, ListRequest{}.StatusFilter())
	require.Error(t, ListRequest{Status: "UNKNOWN"}.Validate())

	filtered := ListRequest{Status: string(models.RequestStatusApproved)}
	require.NoError(t, filtered.Validate())
	require.Equal(t, models.RequestStatusApproved, *filtered.StatusFilter())
}
