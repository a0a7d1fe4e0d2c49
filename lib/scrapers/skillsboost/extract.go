package skillsboost

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"skillscore-backend/lib/htmlutil"
	"skillscore-backend/lib/profileurl"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Extract parses raw profile markup into a RawProfile. The only way
// it fails besides unreadable markup is ErrPrivateProfile; missing
// or malformed elements degrade to empty fields because the page
// shape is not under our control.
func Extract(ctx context.Context, markup []byte) (RawProfile, error) {
	_, span := tracer.Start(ctx, "Extract")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unreadable markup")
		return RawProfile{}, fmt.Errorf("parse profile markup: %w", err)
	}

	if isPrivate(doc) {
		span.SetStatus(codes.Error, "private profile markup")
		return RawProfile{}, ErrPrivateProfile
	}

	profile := RawProfile{
		UserInfo: extractUserInfo(doc),
	}

	// badge cards and game cards share one presentational shape, the
	// only discriminator lives in the linked detail dialog. first
	// collect the dialogs that point at /games/, then classify every
	// card by whether its dialog is in that set.
	gameModals := collectGameModalIds(doc)

	doc.Find(".profile-badge").Each(func(_ int, card *goquery.Selection) {
		modalId := card.Find("ql-button").AttrOr("modal", "")

		kind := KindBadge
		if modalId != "" && gameModals[modalId] {
			kind = KindGame
		}

		item, ok := extractCard(doc, card, kind, modalId)
		if !ok {
			return
		}
		if kind == KindGame {
			profile.Games = append(profile.Games, item)
		} else {
			profile.Badges = append(profile.Badges, item)
		}
	})

	profile.Stats = deriveStats(profile)
	span.SetAttributes(
		attribute.Int("badges", profile.Stats.TotalBadges),
		attribute.Int("games", profile.Stats.TotalGames),
	)
	return profile, nil
}

var nameSelectors = []string{
	".profile-name",
	".user-name",
	"h1",
	".profile-header h1",
	`[data-testid="profile-name"]`,
}

var locationSelectors = []string{
	".profile-location",
	".user-location",
	`[data-testid="profile-location"]`,
}

var joinDateSelectors = []string{
	".join-date",
	".member-since",
	`[data-testid="join-date"]`,
}

// missing user info never fails extraction, fields just stay empty
func extractUserInfo(doc *goquery.Document) UserInfo {
	return UserInfo{
		Name:     htmlutil.FirstText(doc, nameSelectors...),
		Location: htmlutil.FirstText(doc, locationSelectors...),
		JoinDate: htmlutil.FirstText(doc, joinDateSelectors...),
	}
}

func collectGameModalIds(doc *goquery.Document) map[string]bool {
	gameModals := map[string]bool{}
	doc.Find(".profile-badge").Each(func(_ int, card *goquery.Selection) {
		modalId := card.Find("ql-button").AttrOr("modal", "")
		if modalId == "" {
			return
		}
		dialog := doc.Find("#" + modalId)
		if dialog.Length() == 0 {
			return
		}
		href := dialog.Find("ql-button[href]").AttrOr("href", "")
		if strings.Contains(href, "/games/") {
			gameModals[modalId] = true
		}
	})
	return gameModals
}

// extractCard pulls the per-card fields, ok is false when the card
// has no resolvable title (those are dropped silently).
func extractCard(doc *goquery.Document, card *goquery.Selection, kind ItemKind, modalId string) (RawItem, bool) {
	title := htmlutil.CollapseWhitespace(card.Find(".ql-title-medium").First().Text())
	if title == "" {
		return RawItem{}, false
	}

	earnedText := htmlutil.CollapseWhitespace(card.Find(".ql-body-medium").First().Text())

	item := RawItem{
		Kind:        kind,
		Title:       title,
		EarnedText:  earnedText,
		IsCompleted: strings.Contains(strings.ToLower(earnedText), "earned"),
		ImageURL:    card.Find(".badge-image img").AttrOr("src", ""),
	}

	href := card.Find(".badge-image").AttrOr("href", "")
	if kind == KindGame && modalId != "" {
		dialog := doc.Find("#" + modalId)
		// the dialog's action link is the authoritative game url
		if dialogHref := dialog.Find("ql-button[href]").AttrOr("href", ""); dialogHref != "" {
			href = dialogHref
		}
		item.Description = htmlutil.CollapseWhitespace(dialog.Find("p").First().Text())
	}
	item.ItemURL = htmlutil.AbsoluteURL(profileurl.Origin, href)

	return item, true
}

func deriveStats(profile RawProfile) Stats {
	stats := Stats{
		TotalBadges: len(profile.Badges),
		TotalGames:  len(profile.Games),
	}
	for _, b := range profile.Badges {
		if b.IsCompleted {
			stats.CompletedBadges++
		}
	}
	for _, g := range profile.Games {
		if g.IsCompleted {
			stats.CompletedGames++
		}
	}
	return stats
}
