package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

const liveWait = 2 * time.Second

type LiveBoardTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	store     *testfixtures.Store
	messenger *mocks.MockMessenger
	board     *LiveBoard
	polls     poll.Service
	edits     chan *discordgo.MessageEmbed
}

func (s *LiveBoardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.store = testfixtures.NewStore(s.T())
	s.messenger = mocks.NewMockMessenger(s.ctrl)
	s.edits = make(chan *discordgo.MessageEmbed, 64)

	board, err := NewLiveBoard(&LiveBoardConfig{
		Feed:        s.store.Feed,
		Messenger:   s.messenger,
		MaxMessages: 2,
		Logger:      zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.board = board

	polls, err := poll.New(&poll.Config{
		DocumentRepo: s.store,
		Clock:        testfixtures.NewClock(testfixtures.ReferenceTime),
	})
	s.Require().NoError(err)
	s.polls = polls
}

func (s *LiveBoardTestSuite) TearDownTest() {
	s.board.Close()
}

func TestLiveBoardTestSuite(t *testing.T) {
	suite.Run(t, new(LiveBoardTestSuite))
}

func (s *LiveBoardTestSuite) recordEdits(channelID, messageID string) {
	s.messenger.EXPECT().
		Edit(channelID, messageID, gomock.Any()).
		DoAndReturn(func(_, _ string, embed *discordgo.MessageEmbed) error {
			select {
			case s.edits <- embed:
			default:
			}
			return nil
		}).
		AnyTimes()
}

// waitForEdit drains edits until one matches
func (s *LiveBoardTestSuite) waitForEdit(match func(*discordgo.MessageEmbed) bool) *discordgo.MessageEmbed {
	timeout := time.After(liveWait)
	for {
		select {
		case embed := <-s.edits:
			if match(embed) {
				return embed
			}
		case <-timeout:
			s.FailNow("no matching edit")
			return nil
		}
	}
}

func hasField(name string) func(*discordgo.MessageEmbed) bool {
	return func(embed *discordgo.MessageEmbed) bool {
		for _, f := range embed.Fields {
			if f.Name == name {
				return true
			}
		}
		return false
	}
}

func (s *LiveBoardTestSuite) watchTrivial(messageID string) error {
	return Watch(s.ctx, s.board, &LiveSpec[string]{
		Collection: "polls",
		TargetID:   "s1",
		ChannelID:  "chan-1",
		MessageID:  messageID,
		Load: func(context.Context, string) ([]string, error) {
			return []string{"a"}, nil
		},
		Render: func(targetID string, items []string) *discordgo.MessageEmbed {
			return &discordgo.MessageEmbed{Title: strings.Join(items, ",")}
		},
	})
}

func (s *LiveBoardTestSuite) TestLivePollFollowsVotes() {
	s.recordEdits("chan-1", "msg-1")

	created, err := s.polls.CreatePoll(s.ctx, &poll.CreatePollInput{
		SessionID: "s1",
		Question:  "Best talk?",
		Options:   []string{"Keynote", "Workshop"},
	})
	s.Require().NoError(err)

	resp, err := NewPollCommand(s.polls, s.board).Handle(s.ctx, NewRequest("user-1", "live", map[string]string{"session": "s1"}))
	s.Require().NoError(err)
	s.Equal("No polls yet.", resp.Embeds[0].Description)
	s.Require().NotNil(resp.Live)
	s.Require().NoError(resp.Live(s.ctx, "chan-1", "msg-1"))
	s.Equal([]string{"msg-1"}, s.board.Live())

	_, err = s.polls.ActivatePoll(s.ctx, &poll.UpdatePollStatusInput{PollID: created.ID})
	s.Require().NoError(err)
	s.waitForEdit(hasField("Best talk? (active, 0 votes)"))

	_, err = s.polls.SubmitVote(s.ctx, &poll.SubmitVoteInput{PollID: created.ID, UserID: "user-2", OptionIDs: []string{"option-1"}})
	s.Require().NoError(err)
	embed := s.waitForEdit(hasField("Best talk? (active, 1 votes)"))
	s.Contains(embed.Fields[0].Value, "Keynote 100%")
}

func (s *LiveBoardTestSuite) TestOldestIsEvicted() {
	s.messenger.EXPECT().Edit("chan-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.Require().NoError(s.watchTrivial("msg-1"))
	s.Require().NoError(s.watchTrivial("msg-2"))
	s.Require().NoError(s.watchTrivial("msg-3"))

	s.Equal([]string{"msg-2", "msg-3"}, s.board.Live())

	s.board.Release("msg-2")
	s.board.Release("unknown")
	s.Equal([]string{"msg-3"}, s.board.Live())
}

func (s *LiveBoardTestSuite) TestRewatchReplacesEntry() {
	s.messenger.EXPECT().Edit("chan-1", "msg-1", gomock.Any()).Return(nil).AnyTimes()

	s.Require().NoError(s.watchTrivial("msg-1"))
	s.Require().NoError(s.watchTrivial("msg-1"))

	s.Equal([]string{"msg-1"}, s.board.Live())
}

func (s *LiveBoardTestSuite) TestFailedEditReleases() {
	s.messenger.EXPECT().Edit("chan-1", "msg-1", gomock.Any()).Return(errors.New("unknown message")).AnyTimes()

	s.Require().NoError(s.watchTrivial("msg-1"))

	s.Eventually(func() bool {
		return len(s.board.Live()) == 0
	}, liveWait, 10*time.Millisecond)
}

func (s *LiveBoardTestSuite) TestLoadFailureIsReturned() {
	err := Watch(s.ctx, s.board, &LiveSpec[string]{
		Collection: "polls",
		TargetID:   "s1",
		ChannelID:  "chan-1",
		MessageID:  "msg-1",
		Load: func(context.Context, string) ([]string, error) {
			return nil, errors.New("store down")
		},
		Render: func(string, []string) *discordgo.MessageEmbed { return &discordgo.MessageEmbed{} },
	})

	s.Error(err)
	s.Empty(s.board.Live())
}

func (s *LiveBoardTestSuite) TestClosedBoardRejects() {
	s.messenger.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.Require().NoError(s.watchTrivial("msg-1"))

	s.board.Close()

	s.Empty(s.board.Live())
	s.ErrorIs(s.watchTrivial("msg-2"), ErrLiveBoardClosed)
}

func (s *LiveBoardTestSuite) TestWatchValidation() {
	s.Error(Watch(s.ctx, s.board, &LiveSpec[string]{TargetID: "s1"}))
	s.Error(Watch[string](s.ctx, s.board, nil))
}
