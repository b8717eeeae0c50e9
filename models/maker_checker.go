package models

// RequestStatus is the lifecycle state of a pending change request.
// Transitions are one-way: PENDING -> APPROVED or PENDING -> REJECTED.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:  "Awaiting review",
	RequestStatusApproved: "Approved",
	RequestStatusRejected: "Rejected",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	_, exist := requestStatusHumanName[s]
	return exist
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// CrudOperation is the kind of mutation a change request proposes.
type CrudOperation string

const (
	OperationCreate CrudOperation = "CREATE"
	OperationUpdate CrudOperation = "UPDATE"
	OperationDelete CrudOperation = "DELETE"
)

func (o CrudOperation) IsValid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// RequiresTarget reports whether the operation addresses an existing entity.
func (o CrudOperation) RequiresTarget() bool {
	return o == OperationUpdate || o == OperationDelete
}

// EntityType tags the domain entity a change request targets.
// New entity types are added by registering an executor, the engine
// itself never switches on concrete values.
type EntityType string

const (
	EntityTypeUser    EntityType = "USER"
	EntityTypeProduct EntityType = "PRODUCT"
)
