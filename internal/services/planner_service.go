package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/domain"
)

// PlannerServiceImpl implements domain.PlannerService. It builds the
// prompts, calls the generation capability once per request, and
// recovers a structured object from the returned free text. Malformed
// model output is a normal condition here, not a failure: the caller
// always gets something renderable back.
type PlannerServiceImpl struct {
	generator  domain.Generator
	cache      domain.InsightCache
	logger     *zap.Logger
	genTimeout time.Duration
}

// NewPlannerService creates a new planner service
func NewPlannerService(generator domain.Generator, cache domain.InsightCache, genTimeout time.Duration, logger *zap.Logger) domain.PlannerService {
	return &PlannerServiceImpl{
		generator:  generator,
		cache:      cache,
		logger:     logger,
		genTimeout: genTimeout,
	}
}

// GenerateTripPlan implements domain.PlannerService
func (s *PlannerServiceImpl) GenerateTripPlan(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
	if req.Destination == "" {
		return nil, domain.ErrDestinationRequired
	}
	if !s.generator.Configured() {
		return nil, domain.ErrGenAINotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, buildTripPlanPrompt(req))
	if err != nil {
		return nil, err
	}

	plan, ok := ExtractJSONObject(text)
	if !ok {
		s.logger.Warn("generation output could not be parsed as structured data",
			zap.String("destination", req.Destination),
			zap.Int("response_len", len(text)))
		return degradedPlan(text), nil
	}
	return plan, nil
}

// Chat implements domain.PlannerService. The response is returned
// verbatim; this path is intentionally unstructured.
func (s *PlannerServiceImpl) Chat(ctx context.Context, message string, chatContext map[string]any) (string, error) {
	if message == "" {
		return "", domain.ErrMessageRequired
	}
	if !s.generator.Configured() {
		return "", domain.ErrGenAINotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	return s.generator.Generate(ctx, buildChatPrompt(message, chatContext))
}

// Insights implements domain.PlannerService. Generated insights are
// cached per destination; cache failures are logged and ignored.
func (s *PlannerServiceImpl) Insights(ctx context.Context, destination string) (string, error) {
	if destination == "" {
		return "", domain.ErrDestinationRequired
	}
	if !s.generator.Configured() {
		return "", domain.ErrGenAINotConfigured
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, destination)
		if err == nil {
			return cached, nil
		}
		if err != domain.ErrCacheMiss {
			s.logger.Warn("insight cache lookup failed", zap.Error(err))
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	text, err := s.generator.Generate(genCtx, buildInsightsPrompt(destination))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, destination, text); err != nil {
			s.logger.Warn("insight cache store failed", zap.Error(err))
		}
	}
	return text, nil
}

// ExtractJSONObject scans for the outermost brace pair in free-form
// model output and parses the substring between them as a JSON object.
// The parsed object is passed through as-is, without validation against
// the requested schema.
func ExtractJSONObject(text string) (map[string]any, bool) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last < first {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[first:last+1]), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// degradedPlan wraps unparseable model output in the shape callers can
// still render: the raw text is preserved verbatim next to an explicit
// error marker, and the request itself is treated as a success.
func degradedPlan(raw string) map[string]any {
	return map[string]any{
		"itinerary":   []any{},
		"rawResponse": raw,
		"error":       "Could not parse structured response",
		"message":     "AI generated a response but it could not be parsed as structured data",
	}
}

func buildTripPlanPrompt(req domain.TripPlanRequest) string {
	interests := "General sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	return fmt.Sprintf(`Create a detailed travel itinerary for the following trip:

Destination: %s
Budget: %s
Duration: %s
Interests: %s
Travel Style: %s
Group Size: %s
Additional Requirements: %s

Please provide a comprehensive itinerary that includes:
1. Day-by-day breakdown of activities
2. Recommended accommodations
3. Transportation options
4. Estimated costs for each activity
5. Local food recommendations
6. Cultural insights and tips
7. Weather considerations
8. Packing suggestions
9. Safety tips

Format the response as a JSON object with the following structure:
{
  "itinerary": [
    {
      "day": 1,
      "title": "Day title",
      "activities": [
        {
          "time": "09:00",
          "activity": "Activity name",
          "location": "Location name",
          "description": "Activity description",
          "estimatedCost": 1000,
          "type": "sightseeing|food|transport|accommodation|shopping|activity"
        }
      ]
    }
  ],
  "accommodation": {
    "recommendations": [
      {
        "name": "Hotel name",
        "type": "budget|mid-range|luxury",
        "estimatedCost": 3000,
        "description": "Hotel description"
      }
    ]
  },
  "transportation": {
    "toDestination": "Transportation advice to reach destination",
    "local": "Local transportation options",
    "estimatedCost": 5000
  },
  "foodRecommendations": [
    {
      "name": "Restaurant/Dish name",
      "type": "street food|restaurant|local specialty",
      "estimatedCost": 500,
      "description": "Food description"
    }
  ],
  "culturalInsights": [
    "Cultural tip 1",
    "Cultural tip 2"
  ],
  "packingList": [
    "Item 1",
    "Item 2"
  ],
  "safetyTips": [
    "Safety tip 1",
    "Safety tip 2"
  ],
  "totalEstimatedCost": 25000,
  "bestTimeToVisit": "Best time information",
  "weatherConsiderations": "Weather information"
}

Please ensure all costs are in Indian Rupees (INR) and the itinerary is practical and realistic.`,
		req.Destination,
		defaultString(req.Budget, "Moderate"),
		defaultString(req.Duration, "Short trip (4-7 days)"),
		interests,
		defaultString(req.TravelStyle, "Comfortable"),
		defaultString(req.GroupSize, "Solo traveler"),
		defaultString(req.AdditionalRequirements, "None"),
	)
}

func buildChatPrompt(message string, chatContext map[string]any) string {
	contextPrompt := ""
	if len(chatContext) > 0 {
		if serialized, err := json.Marshal(chatContext); err == nil {
			contextPrompt = fmt.Sprintf("Context: %s\n\n", serialized)
		}
	}

	return fmt.Sprintf(`You are a helpful AI travel assistant for "Bag My Trip" application.
You help users plan their trips, answer travel-related questions, and provide personalized recommendations.
Always be friendly, informative, and helpful. Provide practical advice and specific recommendations when possible.

%sUser message: %s

Please provide a helpful and engaging response:`, contextPrompt, message)
}

func buildInsightsPrompt(destination string) string {
	return fmt.Sprintf(`Provide travel insights for %s. Include:
1. Best time to visit
2. Weather patterns
3. Cultural highlights
4. Must-visit attractions
5. Local customs and etiquette
6. Safety considerations
7. Budget estimates
8. Transportation options
9. Food specialties
10. Hidden gems and local secrets

Format as a comprehensive travel guide with practical information.`, destination)
}
