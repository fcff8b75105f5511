package services

import (
	"context"
	"testing"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

func TestRedemptionService_MarkClaimed(t *testing.T) {
	ctx := context.Background()

	t.Run("should set claimed and stamp claimed_at", func(t *testing.T) {
		env := newTestEnv()
		user := env.registerWithPoints(t, "Alice", 500)
		if _, err := env.rewards.Redeem(ctx, &models.RedeemRequest{UserID: user.ID, RewardID: "reward_1"}); err != nil {
			t.Fatalf("redeem failed: %v", err)
		}
		redemptions, _ := env.store.ListRedemptions(ctx, 500)

		resp, err := env.redemptions.MarkClaimed(ctx, &models.MarkClaimedRequest{RedemptionID: redemptions[0].ID})
		if err != nil {
			t.Fatalf("mark claimed failed: %v", err)
		}
		if !resp.Success {
			t.Error("expected success to be true")
		}

		updated, _ := env.store.ListRedemptions(ctx, 500)
		if !updated[0].Claimed {
			t.Error("expected claimed to be true")
		}
		if updated[0].ClaimedAt == nil {
			t.Fatal("expected claimed_at to be set")
		}
	})

	t.Run("re-marking should refresh claimed_at", func(t *testing.T) {
		env := newTestEnv()
		user := env.registerWithPoints(t, "Alice", 500)
		if _, err := env.rewards.Redeem(ctx, &models.RedeemRequest{UserID: user.ID, RewardID: "reward_1"}); err != nil {
			t.Fatalf("redeem failed: %v", err)
		}
		redemptions, _ := env.store.ListRedemptions(ctx, 500)
		req := &models.MarkClaimedRequest{RedemptionID: redemptions[0].ID}

		if _, err := env.redemptions.MarkClaimed(ctx, req); err != nil {
			t.Fatalf("first mark failed: %v", err)
		}
		first, _ := env.store.ListRedemptions(ctx, 500)
		firstAt := *first[0].ClaimedAt

		if _, err := env.redemptions.MarkClaimed(ctx, req); err != nil {
			t.Fatalf("second mark failed: %v", err)
		}
		second, _ := env.store.ListRedemptions(ctx, 500)
		if !second[0].Claimed {
			t.Error("expected claimed to stay true")
		}
		if second[0].ClaimedAt.Before(firstAt) {
			t.Error("expected claimed_at to be refreshed, not rolled back")
		}
	})

	t.Run("should return 404 for an unknown redemption", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.redemptions.MarkClaimed(ctx, &models.MarkClaimedRequest{RedemptionID: "missing"})
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if status := statusOf(t, err); status != 404 {
			t.Errorf("expected status 404, got %d", status)
		}
	})
}

func TestRedemptionService_ListUserRedemptions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	alice := env.registerWithPoints(t, "Alice", 1000)
	bob := env.registerWithPoints(t, "Bob", 1000)
	for _, u := range []*models.User{alice, bob} {
		if _, err := env.rewards.Redeem(ctx, &models.RedeemRequest{UserID: u.ID, RewardID: "reward_1"}); err != nil {
			t.Fatalf("redeem failed: %v", err)
		}
	}

	mine, err := env.redemptions.ListUserRedemptions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 redemption for Alice, got %d", len(mine))
	}
	if mine[0].UserID != alice.ID {
		t.Errorf("expected Alice's redemption, got user %s", mine[0].UserID)
	}

	// Unknown users yield an empty list, not 404.
	none, err := env.redemptions.ListUserRedemptions(ctx, "missing")
	if err != nil {
		t.Fatalf("list for unknown user failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty list, got %d", len(none))
	}
}
