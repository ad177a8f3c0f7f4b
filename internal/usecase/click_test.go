package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/mocks/usecase"
)

type ClickUseCaseTestSuite struct {
	suite.Suite
	errUnknown    error
	now           time.Time
	clickRepoMock *usecase.MockClickRepository
	uc            *ClickUseCase
}

func (suite *ClickUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
}

func (suite *ClickUseCaseTestSuite) SetupSubTest() {
	suite.clickRepoMock = usecase.NewMockClickRepository(suite.T())
	suite.uc = NewClickUseCase(suite.clickRepoMock)
	suite.uc.now = func() time.Time { return suite.now }
}

func (suite *ClickUseCaseTestSuite) TearDownSubTest() {
	suite.clickRepoMock.AssertExpectations(suite.T())
}

func (suite *ClickUseCaseTestSuite) TestRecord() {
	suite.Run("unknown error", func() {
		suite.clickRepoMock.
			On("Record", context.Background(), int64(1), mock.Anything, suite.now, mock.Anything).
			Once().
			Return(suite.errUnknown)

		err := suite.uc.Record(context.Background(), 1, entity.ClickContext{})

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("supplied dedup key is passed through", func() {
		cc := entity.ClickContext{DedupKey: "key-1", Device: "desktop", OS: "Windows", Browser: "Chrome"}

		suite.clickRepoMock.
			On("Record", context.Background(), int64(1), "key-1", suite.now, mock.MatchedBy(func(got entity.ClickContext) bool {
				return got.Device == "desktop" && got.Country == entity.Unknown
			})).
			Once().
			Return(nil)

		err := suite.uc.Record(context.Background(), 1, cc)

		suite.NoError(err)
	})

	suite.Run("missing dedup key is generated", func() {
		var firstKey, secondKey string

		suite.clickRepoMock.
			On("Record", context.Background(), int64(1), mock.Anything, suite.now, mock.Anything).
			Twice().
			Run(func(args mock.Arguments) {
				key := args.String(2)
				if firstKey == "" {
					firstKey = key
				} else {
					secondKey = key
				}
			}).
			Return(nil)

		suite.NoError(suite.uc.Record(context.Background(), 1, entity.ClickContext{}))
		suite.NoError(suite.uc.Record(context.Background(), 1, entity.ClickContext{}))

		suite.NotEmpty(firstKey)
		suite.NotEmpty(secondKey)
		suite.NotEqual(firstKey, secondKey)
	})

	suite.Run("empty classification fields become unknown", func() {
		suite.clickRepoMock.
			On("Record", context.Background(), int64(1), mock.Anything, suite.now, mock.MatchedBy(func(got entity.ClickContext) bool {
				return got.Device == entity.Unknown &&
					got.OS == entity.Unknown &&
					got.Browser == entity.Unknown &&
					got.Country == entity.Unknown &&
					got.Region == entity.Unknown &&
					got.City == entity.Unknown
			})).
			Once().
			Return(nil)

		err := suite.uc.Record(context.Background(), 1, entity.ClickContext{})

		suite.NoError(err)
	})
}

func TestClickUseCase(t *testing.T) {
	suite.Run(t, new(ClickUseCaseTestSuite))
}
