package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTierStructureRoundTrip(t *testing.T) {
	tiers := []DiaryTier{
		{
			TierName:          "Easy",
			TierColor:         "#00ff00",
			RewardDescription: "10k GP",
			Order:             1,
			Tasks: []DiaryTask{
				{
					ID:           "task-1",
					Description:  "Kill 10 Chickens",
					Type:         TaskTypeKill,
					Requirements: map[string]string{"npc": "Chicken", "count": "10"},
					Hint:         "Chickens can be found near Lumbridge",
					Order:        1,
				},
				{
					ID:           "task-2",
					Description:  "Reach 20 Attack",
					Type:         TaskTypeSkill,
					Requirements: map[string]string{"skill": "Attack", "level": "20"},
					Order:        2,
				},
			},
		},
		{
			TierName:  "Hard",
			TierColor: "#ff0000",
			Order:     2,
			Tasks:     []DiaryTask{},
		},
	}

	blob, err := json.Marshal(tiers)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded []DiaryTier
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(tiers, decoded) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", tiers, decoded)
	}
}

func TestMemberIsOwner(t *testing.T) {
	if (ClanMember{Rank: RankDeputyOwner}).IsOwner() {
		t.Fatal("deputy owner must not count as owner")
	}
	if !(ClanMember{Rank: RankOwner}).IsOwner() {
		t.Fatal("rank 127 must count as owner")
	}
}
