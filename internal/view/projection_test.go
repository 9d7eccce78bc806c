package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saccoflow/internal/domain"
)

func TestJoinTransactionMembers(t *testing.T) {
	members := []domain.Member{
		{ID: "m1", Name: "Jane Doe"},
		{ID: "m2", Name: "Peter Okello"},
	}
	txns := []domain.Transaction{
		{ID: "t1", MemberID: "m2"},
		{ID: "t2", MemberID: "m1"},
		{ID: "t3", MemberID: "ghost"},
	}

	out := JoinTransactionMembers(txns, members)

	assert.Equal(t, "Peter Okello", out[0].MemberName)
	assert.Equal(t, "Jane Doe", out[1].MemberName)
	assert.Equal(t, "Unknown", out[2].MemberName)
	assert.Equal(t, "t1", out[0].ID, "row order preserved")
}

func TestJoinLoanMembers(t *testing.T) {
	out := JoinLoanMembers(
		[]domain.Loan{{ID: "l1", MemberID: "m1"}, {ID: "l2", MemberID: "m9"}},
		[]domain.Member{{ID: "m1", Name: "Jane Doe"}},
	)

	assert.Equal(t, "Jane Doe", out[0].MemberName)
	assert.Equal(t, "Unknown", out[1].MemberName)
}

func TestJoinWithNoMembers(t *testing.T) {
	out := JoinTransactionMembers([]domain.Transaction{{ID: "t1", MemberID: "m1"}}, nil)
	assert.Equal(t, "Unknown", out[0].MemberName)
}
