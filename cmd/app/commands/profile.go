package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	"github.com/allisson/seikyu/internal/profile/http/dto"
	profileUseCase "github.com/allisson/seikyu/internal/profile/usecase"
)

// RunProfileList prints every stored profile.
func RunProfileList(ctx context.Context, useCase profileUseCase.ProfileUseCase, streams IOTuple, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	profiles, err := useCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.MapProfilesToListResponse(profiles))
	}

	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(streams.Writer, "No profiles found.")
		return nil
	}

	table := newTable(streams.Writer)
	_, _ = fmt.Fprintln(table, "ID\tPROFILE\tNAME\tDEFAULT")
	for _, p := range profiles {
		marker := ""
		if p.Meta.IsDefault {
			marker = "*"
		}
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", p.ID, p.Meta.ProfileName, p.PersonalInfo.Name, marker)
	}
	return table.Flush()
}

// RunProfileShow prints one profile, or the default profile when id is empty.
func RunProfileShow(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	streams IOTuple,
	id string,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var (
		profile *profileDomain.IssuerProfile
		err     error
	)
	if id == "" {
		profile, err = useCase.GetDefault(ctx)
	} else {
		profile, err = useCase.Get(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	return writeProfile(streams, profile, format)
}

// RunProfileCreate creates a profile from a JSON document read from file ("-" for stdin).
func RunProfileCreate(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	logger *slog.Logger,
	streams IOTuple,
	file string,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var req dto.CreateProfileRequest
	if err := decodeInput(streams, file, &req); err != nil {
		return err
	}

	profile, err := useCase.Create(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Info("profile created", slog.String("profile_id", profile.ID))
	return writeProfile(streams, profile, format)
}

// RunProfileUpdate applies a partial update read from file ("-" for stdin).
func RunProfileUpdate(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	logger *slog.Logger,
	streams IOTuple,
	id string,
	file string,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := decodeInput(streams, file, &req); err != nil {
		return err
	}

	profile, err := useCase.Update(ctx, id, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	logger.Info("profile updated", slog.String("profile_id", profile.ID))
	return writeProfile(streams, profile, format)
}

// RunProfileDelete removes a profile after confirmation, unless yes is set.
func RunProfileDelete(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	streams IOTuple,
	id string,
	yes bool,
) error {
	if !yes {
		ok, err := confirm(streams, fmt.Sprintf("Delete profile %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(streams.Writer, "Aborted.")
			return nil
		}
	}

	if err := useCase.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	_, _ = fmt.Fprintf(streams.Writer, "Profile %s deleted.\n", id)
	return nil
}

// RunProfileSetDefault makes id the default profile.
func RunProfileSetDefault(ctx context.Context, useCase profileUseCase.ProfileUseCase, streams IOTuple, id string) error {
	if err := useCase.SetDefault(ctx, id); err != nil {
		return fmt.Errorf("failed to set default profile: %w", err)
	}

	_, _ = fmt.Fprintf(streams.Writer, "Profile %s is now the default.\n", id)
	return nil
}

// RunProfileExport writes an unencrypted backup. An empty output or "-" writes to the
// command's writer; a directory receives a dated backup file.
func RunProfileExport(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	streams IOTuple,
	output string,
	now time.Time,
) error {
	data, err := useCase.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export profiles: %w", err)
	}

	if output == "" || output == "-" {
		_, err := fmt.Fprintln(streams.Writer, string(data))
		return err
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, profileDomain.BackupFilename(now))
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	_, _ = fmt.Fprintf(streams.Writer, "Profiles exported to %s\n", output)
	return nil
}

// RunProfileImport replaces every profile with those of a backup. Reading the backup
// from stdin requires yes, since stdin also answers the confirmation.
func RunProfileImport(
	ctx context.Context,
	useCase profileUseCase.ProfileUseCase,
	logger *slog.Logger,
	streams IOTuple,
	file string,
	yes bool,
) error {
	if file == "-" && !yes {
		return fmt.Errorf("importing from stdin requires --yes")
	}

	data, err := readInput(streams, file)
	if err != nil {
		return err
	}

	if !yes {
		ok, err := confirm(streams, "Importing replaces all existing profiles. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(streams.Writer, "Aborted.")
			return nil
		}
	}

	count, err := useCase.Import(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to import profiles: %w", err)
	}

	logger.Info("profiles imported", slog.Int("count", count))
	_, _ = fmt.Fprintf(streams.Writer, "Imported %d profile(s).\n", count)
	return nil
}

func writeProfile(streams IOTuple, profile *profileDomain.IssuerProfile, format string) error {
	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.MapProfileToResponse(profile))
	}

	table := newTable(streams.Writer)
	_, _ = fmt.Fprintf(table, "ID\t%s\n", profile.ID)
	_, _ = fmt.Fprintf(table, "Profile\t%s\n", profile.Meta.ProfileName)
	_, _ = fmt.Fprintf(table, "Default\t%t\n", profile.Meta.IsDefault)
	_, _ = fmt.Fprintf(table, "Name\t%s\n", profile.PersonalInfo.Name)
	if profile.PersonalInfo.BusinessName != "" {
		_, _ = fmt.Fprintf(table, "Business name\t%s\n", profile.PersonalInfo.BusinessName)
	}
	_, _ = fmt.Fprintf(table, "Address\t〒%s %s\n", profile.PersonalInfo.PostalCode, profile.PersonalInfo.Address)
	_, _ = fmt.Fprintf(table, "Bank\t%s %s %s %s\n",
		profile.BankInfo.BankName,
		profile.BankInfo.BranchName,
		profile.BankInfo.AccountType,
		profile.BankInfo.AccountNumber,
	)
	_, _ = fmt.Fprintf(table, "Account holder\t%s\n", profile.BankInfo.AccountHolder)
	if profile.TaxInfo.InvoiceNumber != "" {
		_, _ = fmt.Fprintf(table, "Registration number\t%s\n", profile.TaxInfo.InvoiceNumber)
	}
	_, _ = fmt.Fprintf(table, "Tax method\t%s\n", profile.TaxInfo.TaxMethod)
	return table.Flush()
}
