// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/pkg/slice"
)

// # Recommendations

// Client-facing recommendation messages, part of the mobile API contract.
const (
	msgForYouNoLikes = "Aún no te ha gustado ningún cómic. ¡Explora y dale like a tus favoritos!"
	msgForYouNoTags  = "Los cómics que te gustan no tienen etiquetas o no se pudieron procesar."
	msgForYouResult  = "Cómics recomendados basados en las etiquetas más frecuentes de tus 'Me Gusta': %s."
)

// topTagCount is how many of the user's dominant liked tags drive the feed.
const topTagCount = 2

// Recommendation is the outcome of the "for you" pipeline.
type Recommendation struct {
	Comics  []*Comic
	Tags    []Tag  // The liked tags that drove the selection
	Message string // Client message; always set
}

/*
RecommendForUser builds the personalised "for you" feed.

Description: Three stages, each with its own empty-state message:

 1. Collect the IDs of every comic the user liked. No likes ends the
    pipeline with an invitation to explore.
 2. Rank the tags across those comics by frequency (ties broken by name)
    and keep the top two. Untagged likes end the pipeline with an
    explanation.
 3. Fetch every distinct comic carrying either tag, title ASC. The success
    message names the driving tags so the client can caption the feed.

Parameters:
  - context: context.Context
  - userID: string (Authenticated user)

Returns:
  - *Recommendation: Feed, driving tags, and caption message
  - error: Repository level errors
*/
func (service *Service) RecommendForUser(context context.Context, userID string) (*Recommendation, error) {
	likedIDs, err := service.store.LikedComicIDs(context, userID)
	if err != nil {
		return nil, err
	}
	if len(likedIDs) == 0 {
		return &Recommendation{Comics: []*Comic{}, Message: msgForYouNoLikes}, nil
	}

	topTags, err := service.store.TopTagsForComics(context, likedIDs, topTagCount)
	if err != nil {
		return nil, err
	}
	if len(topTags) == 0 {
		return &Recommendation{Comics: []*Comic{}, Message: msgForYouNoTags}, nil
	}

	tagIDs := slice.Map(topTags, func(tag Tag) int64 { return tag.ID })
	comics, err := service.store.ListByAnyTag(context, tagIDs)
	if err != nil {
		return nil, err
	}

	tagNames := slice.Map(topTags, func(tag Tag) string { return tag.Name })

	service.logger.Info("for_you_feed_built",
		slog.String("user_id", userID),
		slog.Int("liked_comics", len(likedIDs)),
		slog.Any("driving_tags", tagNames),
		slog.Int("recommended", len(comics)),
	)

	return &Recommendation{
		Comics:  comics,
		Tags:    topTags,
		Message: fmt.Sprintf(msgForYouResult, strings.Join(tagNames, ", ")),
	}, nil
}
