package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

type ConvertFileUseCase struct {
	Source    RowSource
	Sink      RowSink
	Notifiers []ResultNotifier
	Recorder  ConversionRecorder
	Logger    *zap.Logger
	Roster    RosterOptions

	now func() time.Time
}

func NewConvertFileUseCase(
	source RowSource,
	sink RowSink,
	logger *zap.Logger,
	roster RosterOptions,
	notifiers ...ResultNotifier,
) *ConvertFileUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConvertFileUseCase{
		Source:    source,
		Sink:      sink,
		Notifiers: notifiers,
		Logger:    logger,
		Roster:    roster,
		now:       time.Now,
	}
}

// Execute converts one export file and writes the Mailchimp file next to it.
// Nothing is written unless every row was converted.
func (uc *ConvertFileUseCase) Execute(ctx context.Context, input ConvertFileInput) (*ConvertFileOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, &ProcessingError{
			Code:    CodeUnsupportedInput,
			Message: "no input file given",
		}
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.KindForPath(input.Path)
	}

	out := &ConvertFileOutput{
		RunID:      uuid.New().String(),
		Kind:       kind,
		InputPath:  input.Path,
		OutputPath: kind.OutputPath(input.Path),
	}
	log := uc.logger().With(
		zap.String("run_id", out.RunID),
		zap.String("kind", string(kind)),
		zap.String("input", input.Path),
	)
	started := uc.clock()
	log.Info("conversion started")

	var err error
	if kind == entity.KindVolunteer {
		err = uc.convertVolunteerFile(out)
	} else {
		err = uc.convertRosterFile(out)
	}

	result := ConversionResult{
		RunID:       out.RunID,
		Kind:        kind,
		Status:      StatusCompleted,
		InputPath:   out.InputPath,
		OutputPath:  out.OutputPath,
		RowsRead:    out.RowsRead,
		RowsWritten: out.RowsWritten,
		StartedAt:   started,
		FinishedAt:  uc.clock(),
	}

	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		result.Status = StatusFailed
		result.OutputPath = ""
		result.RowsWritten = 0
		result.Error = err.Error()
		uc.record(result)
		uc.notify(ctx, log, result)
		return nil, err
	}

	log.Info("conversion finished",
		zap.String("output", out.OutputPath),
		zap.Int("rows_in", out.RowsRead),
		zap.Int("rows_out", out.RowsWritten),
		zap.Duration("elapsed", result.FinishedAt.Sub(started)),
	)
	uc.record(result)
	uc.notify(ctx, log, result)

	return out, nil
}

func (uc *ConvertFileUseCase) convertRosterFile(out *ConvertFileOutput) error {
	rows, err := uc.Source.Read(out.InputPath, entity.RosterFormat)
	if err != nil {
		return newProcessingError(CodeReadFailed, "failed to read roster file", err)
	}
	out.RowsRead = len(rows)

	sheet := uc.ConvertRows(entity.KindRoster, rows)
	if err := uc.Sink.Write(out.OutputPath, sheet); err != nil {
		return newProcessingError(CodeWriteFailed, "failed to write contacts file", err)
	}
	out.RowsWritten = sheet.Len()
	return nil
}

func (uc *ConvertFileUseCase) convertVolunteerFile(out *ConvertFileOutput) error {
	rows, err := uc.Source.Read(out.InputPath, entity.VolunteerFormat)
	if err == nil {
		out.RowsRead = len(rows)
		sheet := uc.ConvertRows(entity.KindVolunteer, rows)
		if err = uc.Sink.Write(out.OutputPath, sheet); err == nil {
			out.RowsWritten = sheet.Len()
			return nil
		}
	}
	return newProcessingError(CodeProcessingFailed, "failed to process volunteer file", err)
}

// ConvertRows is the pure transform behind both pipelines.
func (uc *ConvertFileUseCase) ConvertRows(kind entity.ExportKind, rows []entity.RawRow) entity.Sheet {
	if kind == entity.KindVolunteer {
		return entity.VolunteerSheet(BuildVolunteerContacts(rows))
	}
	return entity.ContactSheet(BuildRosterContacts(rows, uc.Roster))
}

// ConvertStream converts an uploaded export held in memory. The caller owns
// encoding the returned sheet.
func (uc *ConvertFileUseCase) ConvertStream(ctx context.Context, input ConvertStreamInput) (*ConvertStreamOutput, error) {
	if input.Body == nil {
		return nil, &ProcessingError{
			Code:    CodeUnsupportedInput,
			Message: "no file uploaded",
		}
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.KindForPath(input.FileName)
	}

	out := &ConvertStreamOutput{
		RunID:    uuid.New().String(),
		Kind:     kind,
		FileName: kind.OutputFileName(),
	}
	log := uc.logger().With(
		zap.String("run_id", out.RunID),
		zap.String("kind", string(kind)),
		zap.String("upload", input.FileName),
	)
	started := uc.clock()

	rows, err := uc.Source.Decode(input.Body, kind.Format())
	if err != nil {
		if kind == entity.KindVolunteer {
			err = newProcessingError(CodeProcessingFailed, "failed to process volunteer file", err)
		} else {
			err = newProcessingError(CodeReadFailed, "failed to read roster file", err)
		}
		log.Warn("upload rejected", zap.Error(err))
		uc.record(ConversionResult{Kind: kind, Status: StatusFailed})
		return nil, err
	}

	out.RowsRead = len(rows)
	out.Sheet = uc.ConvertRows(kind, rows)

	log.Info("upload converted",
		zap.Int("rows_in", out.RowsRead),
		zap.Int("rows_out", out.Sheet.Len()),
		zap.Duration("elapsed", uc.clock().Sub(started)),
	)
	uc.record(ConversionResult{
		Kind:        kind,
		Status:      StatusCompleted,
		RowsRead:    out.RowsRead,
		RowsWritten: out.Sheet.Len(),
	})

	return out, nil
}

func (uc *ConvertFileUseCase) notify(ctx context.Context, log *zap.Logger, result ConversionResult) {
	for _, n := range uc.Notifiers {
		if n == nil {
			continue
		}
		if err := n.NotifyConversion(ctx, result); err != nil {
			log.Warn("result notification failed", zap.Error(err))
		}
	}
}

func (uc *ConvertFileUseCase) record(result ConversionResult) {
	if uc.Recorder != nil {
		uc.Recorder.RecordConversion(result.Kind, result.Status, result.RowsRead, result.RowsWritten)
	}
}

func (uc *ConvertFileUseCase) logger() *zap.Logger {
	if uc.Logger == nil {
		return zap.NewNop()
	}
	return uc.Logger
}

func (uc *ConvertFileUseCase) clock() time.Time {
	if uc.now == nil {
		return time.Now()
	}
	return uc.now()
}
