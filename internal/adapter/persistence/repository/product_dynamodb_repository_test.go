package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSortProductItems(t *testing.T) {
	pos := func(v int) *int { return &v }
	items := []productItem{
		{ID: "PROD-009"},
		{ID: "PROD-002", Position: pos(2)},
		{ID: "PROD-001"},
		{ID: "PROD-010", Position: pos(1)},
		{ID: "PROD-003", Position: pos(2)},
	}

	sortProductItems(items)

	want := []string{"PROD-010", "PROD-002", "PROD-003", "PROD-001", "PROD-009"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestProductItemPositionAttribute(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberS{Value: "PROD-004"},
		"price":    &types.AttributeValueMemberN{Value: "85000"},
		"stock":    &types.AttributeValueMemberN{Value: "3"},
		"position": &types.AttributeValueMemberN{Value: "7"},
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Position == nil || *it.Position != 7 {
		t.Fatalf("expected position 7, got %v", it.Position)
	}

	delete(raw, "position")
	var unpositioned productItem
	if err := attributevalue.UnmarshalMap(raw, &unpositioned); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if unpositioned.Position != nil {
		t.Fatalf("expected no position, got %d", *unpositioned.Position)
	}
}
